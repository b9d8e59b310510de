package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/digits"
)

// Reminder outcomes recorded in metrics
const (
	reminderSent    = "sent"
	reminderSkipped = "skipped"
	reminderFailed  = "failed"
)

// SendTomorrowReminder texts tomorrow's installations to the configured
// receptors and returns how many installations it covered. Nothing is sent
// when there are no installations or no receptors.
func (s *InstallationService) SendTomorrowReminder(ctx context.Context, now time.Time) (int, error) {
	view, err := s.Tomorrow(ctx, now)
	if err != nil {
		s.recordReminder(reminderFailed)
		return 0, err
	}

	if view.Count == 0 || len(s.receptors) == 0 || s.sms == nil {
		s.recordReminder(reminderSkipped)
		return 0, nil
	}

	messageID, err := s.sms.Send(ctx, s.receptors, reminderMessage(view))
	if err != nil {
		s.recordReminder(reminderFailed)
		return 0, fmt.Errorf("failed to send reminder: %w", err)
	}

	s.recordReminder(reminderSent)
	s.log.FromContext(ctx).WithFields(logrus.Fields{
		"message_id": messageID,
		"count":      view.Count,
		"date":       view.Date.Jalali,
	}).Info("Sent installation reminder")

	return view.Count, nil
}

// reminderMessage renders the SMS body with Persian digits, one line per installation
func reminderMessage(view *TomorrowView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "نصب‌های فردا (%s): %d مورد", view.Date.Label, view.Count)
	for _, inst := range view.Installations {
		b.WriteString("\n")
		b.WriteString(inst.Time)
		if inst.OrderNumber != nil {
			fmt.Fprintf(&b, " سفارش %s", *inst.OrderNumber)
		} else {
			fmt.Fprintf(&b, " سفارش #%d", inst.OrderID)
		}
		if inst.Notes != nil && *inst.Notes != "" {
			b.WriteString(" - ")
			b.WriteString(*inst.Notes)
		}
	}
	return digits.ToPersian(b.String())
}

func (s *InstallationService) recordReminder(outcome string) {
	if s.metrics != nil {
		s.metrics.RemindersSent.WithLabelValues(outcome).Inc()
	}
}

// nextReminderAt returns the first hour:00 in loc strictly after now
func nextReminderAt(now time.Time, hour int, loc *time.Location) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, loc)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, hour, 0, 0, 0, loc)
	}
	return next
}

// RunDailyReminder sends the tomorrow reminder every day at hour (local time)
// until ctx is done.
func (s *InstallationService) RunDailyReminder(ctx context.Context, hour int) {
	for {
		now := s.now()
		timer := time.NewTimer(nextReminderAt(now, hour, s.calendar.Location()).Sub(now))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			if _, err := s.SendTomorrowReminder(ctx, s.now()); err != nil {
				s.log.Entry().WithError(err).Error("Daily installation reminder failed")
			}
		}
	}
}
