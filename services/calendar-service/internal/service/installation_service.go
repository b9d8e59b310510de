package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Ag1rin/TazeinDecor-sub002/services/calendar-service/internal/models"
	"github.com/Ag1rin/TazeinDecor-sub002/services/calendar-service/internal/notify"
	"github.com/Ag1rin/TazeinDecor-sub002/services/calendar-service/internal/pubsub"
	"github.com/Ag1rin/TazeinDecor-sub002/services/calendar-service/internal/repository"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/helpers"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/jalali"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/logger"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/metrics"
)

// defaultListDays is the span of a listing when only its start is given
const defaultListDays = 30

// Slot is the schedulable part of an installation
type Slot struct {
	InstallationDate string  `json:"installation_date" validate:"required,jalali_date"`
	Time             string  `json:"time,omitempty" validate:"omitempty,clock"`
	Notes            *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
	Color            *string `json:"color,omitempty" validate:"omitempty,hex_color"`
}

// ScheduleRequest creates an installation for an order
type ScheduleRequest struct {
	OrderID uint64 `json:"order_id" validate:"required"`
	Slot
}

// Options wires the optional collaborators of InstallationService
type Options struct {
	Publisher pubsub.Publisher
	SMS       notify.SMSChannel
	Receptors []string
	Metrics   *metrics.Metrics
	Logger    *logger.Logger
	Clock     func() time.Time
}

type InstallationService struct {
	repo      repository.InstallationRepositoryInterface
	calendar  *Calendar
	validator *helpers.CustomValidator
	publisher pubsub.Publisher
	sms       notify.SMSChannel
	receptors []string
	metrics   *metrics.Metrics
	log       *logger.Logger
	now       func() time.Time
}

func NewInstallationService(repo repository.InstallationRepositoryInterface, calendar *Calendar, opts Options) *InstallationService {
	s := &InstallationService{
		repo:      repo,
		calendar:  calendar,
		validator: helpers.NewCustomValidator(),
		publisher: opts.Publisher,
		sms:       opts.SMS,
		receptors: opts.Receptors,
		metrics:   opts.Metrics,
		log:       opts.Logger,
		now:       opts.Clock,
	}
	if s.publisher == nil {
		s.publisher = pubsub.NewNoopPublisher()
	}
	if s.log == nil {
		s.log = logger.NewLogger("calendar")
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Schedule validates req and stores a new installation for its order
func (s *InstallationService) Schedule(ctx context.Context, req ScheduleRequest) (*InstallationView, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	when, err := s.instant(req.Slot)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.OrderExists(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to check order: %w", err)
	}
	if !exists {
		return nil, ErrOrderNotFound
	}

	inst := &models.Installation{
		OrderID:          req.OrderID,
		InstallationDate: when,
		Notes:            req.Notes,
		Color:            req.Color,
		CreatedAt:        s.now(),
	}
	if err := s.repo.Create(ctx, inst); err != nil {
		return nil, fmt.Errorf("failed to schedule installation: %w", err)
	}

	s.publish(ctx, models.ActionCreated, inst)

	view := newInstallationView(inst, s.calendar.Location(), s.now())
	return &view, nil
}

// Reschedule replaces the date, time, notes and color of an installation
func (s *InstallationService) Reschedule(ctx context.Context, id int64, slot Slot) (*InstallationView, error) {
	if err := s.validate(slot); err != nil {
		return nil, err
	}

	when, err := s.instant(slot)
	if err != nil {
		return nil, err
	}

	inst, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get installation: %w", err)
	}
	if inst == nil {
		return nil, ErrInstallationNotFound
	}

	now := s.now()
	inst.InstallationDate = when
	inst.Notes = slot.Notes
	inst.Color = slot.Color
	inst.UpdatedAt = &now

	if err := s.repo.Update(ctx, inst); err != nil {
		return nil, fmt.Errorf("failed to reschedule installation: %w", err)
	}

	s.publish(ctx, models.ActionUpdated, inst)

	view := newInstallationView(inst, s.calendar.Location(), now)
	return &view, nil
}

// Cancel deletes an installation
func (s *InstallationService) Cancel(ctx context.Context, id int64) error {
	inst, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get installation: %w", err)
	}
	if inst == nil {
		return ErrInstallationNotFound
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to cancel installation: %w", err)
	}
	if !deleted {
		return ErrInstallationNotFound
	}

	s.publish(ctx, models.ActionDeleted, inst)
	return nil
}

// Get retrieves a single installation
func (s *InstallationService) Get(ctx context.Context, id int64) (*InstallationView, error) {
	inst, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get installation: %w", err)
	}
	if inst == nil {
		return nil, ErrInstallationNotFound
	}

	view := newInstallationView(inst, s.calendar.Location(), s.now())
	return &view, nil
}

// List returns installations between two inclusive Jalali dates. An empty
// from means today; an empty to means 30 days after from, capped at the
// last supported day.
// Both ends are inclusive, so the default range covers 31 calendar days.
func (s *InstallationService) List(ctx context.Context, from, to string) ([]InstallationView, error) {
	now := s.now()

	var start, end jalali.Date
	var err error
	if strings.TrimSpace(from) == "" {
		if start, err = s.calendar.Date(now); err != nil {
			return nil, err
		}
	} else if start, err = parseSupportedDate(from); err != nil {
		return nil, invalidField("from", err)
	}

	if strings.TrimSpace(to) == "" {
		end = start.AddDays(defaultListDays)
		if last := jalali.MaxDate(); end.After(last) {
			end = last
		}
	} else if end, err = parseSupportedDate(to); err != nil {
		return nil, invalidField("to", err)
	}
	if end.Before(start) {
		return nil, invalidField("to", fmt.Errorf("%s is before %s", end, start))
	}

	list, err := s.between(ctx, "to", start, end)
	if err != nil {
		return nil, err
	}
	return newInstallationViews(list, s.calendar.Location(), now), nil
}

// Month returns the month grid with each day's installations
func (s *InstallationService) Month(ctx context.Context, year, month int) (*MonthView, error) {
	now := s.now()

	view, err := s.calendar.Month(year, month, now)
	if err != nil {
		return nil, err
	}

	first := jalali.MustNew(year, month, 1)
	list, err := s.between(ctx, "month", first, first.LastOfMonth())
	if err != nil {
		return nil, err
	}

	loc := s.calendar.Location()
	for _, inst := range list {
		d, err := jalali.FromTime(inst.InstallationDate.In(loc))
		if err != nil || d.Year() != year || int(d.Month()) != month {
			continue
		}
		cell := &view.Days[d.Day()-1]
		cell.Installations = append(cell.Installations, newInstallationView(inst, loc, now))
	}

	return &view, nil
}

// Tomorrow lists the installations on the Jalali day after now
func (s *InstallationService) Tomorrow(ctx context.Context, now time.Time) (*TomorrowView, error) {
	today, err := s.calendar.Date(now)
	if err != nil {
		return nil, err
	}
	tomorrow := today.AddDays(1)

	list, err := s.between(ctx, "date", tomorrow, tomorrow)
	if err != nil {
		return nil, err
	}

	views := newInstallationViews(list, s.calendar.Location(), now)
	return &TomorrowView{
		Date:          newDateView(tomorrow),
		Count:         len(views),
		Installations: views,
	}, nil
}

// between lists installations on the inclusive day range; range errors are
// reported against field
func (s *InstallationService) between(ctx context.Context, field string, from, to jalali.Date) ([]*models.Installation, error) {
	start, end, err := helpers.JalaliDayRange(from, to, s.calendar.Location())
	if err != nil {
		return nil, invalidField(field, err)
	}

	list, err := s.repo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list installations: %w", err)
	}
	return list, nil
}

// instant turns a validated slot into the Gregorian instant it names
func (s *InstallationService) instant(slot Slot) (time.Time, error) {
	input := slot.InstallationDate
	if slot.Time != "" {
		input += " " + slot.Time
	}

	when, err := helpers.ParseJalaliDateTime(input, s.calendar.Location())
	if err != nil {
		return time.Time{}, invalidField("installation_date", err)
	}
	return when, nil
}

func (s *InstallationService) validate(req interface{}) error {
	err := s.validator.Validate(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrValidation, verrs)
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// publish notifies listeners; failures are logged and never fail the request
func (s *InstallationService) publish(ctx context.Context, action string, inst *models.Installation) {
	event := models.InstallationEvent{
		Action:  action,
		ID:      inst.ID,
		OrderID: inst.OrderID,
	}
	if d, err := jalali.FromTime(inst.InstallationDate.In(s.calendar.Location())); err == nil {
		event.InstallationDate = jalali.FormatDateTime(d, inst.InstallationDate.In(s.calendar.Location()))
	}
	if inst.Color != nil {
		event.Color = *inst.Color
	}

	if err := s.publisher.PublishInstallationChanged(ctx, event); err != nil {
		s.log.FromContext(ctx).WithError(err).WithField("installation_id", inst.ID).Warn("Failed to publish installation event")
	}
}
