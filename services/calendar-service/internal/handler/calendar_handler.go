package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/Ag1rin/TazeinDecor-sub002/services/calendar-service/internal/service"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/helpers"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/logger"
)

type CalendarHandler struct {
	calendar *service.Calendar
	log      *logger.Logger
	now      func() time.Time
}

func NewCalendarHandler(calendar *service.Calendar, log *logger.Logger, now func() time.Time) *CalendarHandler {
	return &CalendarHandler{calendar: calendar, log: log, now: now}
}

// Today handles GET /api/calendar/today
func (h *CalendarHandler) Today(w http.ResponseWriter, r *http.Request) {
	view, err := h.calendar.Today(h.now())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, view)
}

// Convert handles GET /api/calendar/convert
// Query params: gregorian (YYYY-MM-DD) or jalali (Y/m/d)
func (h *CalendarHandler) Convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		view service.DateView
		err  error
	)
	switch {
	case strings.TrimSpace(q.Get("gregorian")) != "":
		view, err = h.calendar.ConvertGregorian(q.Get("gregorian"))
	case strings.TrimSpace(q.Get("jalali")) != "":
		view, err = h.calendar.ConvertJalali(q.Get("jalali"))
	default:
		writeFieldError(w, r, &service.FieldError{Field: "date", Err: errMissing})
		return
	}
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, view)
}

// Month handles GET /api/calendar/month
// Query params: year, month (default to the current Jalali month)
func (h *CalendarHandler) Month(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	year, month, err := yearMonth(r, h.calendar, now)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	view, err := h.calendar.Month(year, month, now)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, view)
}

// yearMonth reads the year and month query params, falling back to the
// Jalali month of now for whichever is absent
func yearMonth(r *http.Request, calendar *service.Calendar, now time.Time) (int, int, error) {
	today, err := calendar.Date(now)
	if err != nil {
		return 0, 0, err
	}
	year, month := today.Year(), int(today.Month())

	q := r.URL.Query()
	if s := q.Get("year"); s != "" {
		if year, err = helpers.ParseInt(s); err != nil {
			return 0, 0, &service.FieldError{Field: "year", Err: err}
		}
	}
	if s := q.Get("month"); s != "" {
		if month, err = helpers.ParseInt(s); err != nil {
			return 0, 0, &service.FieldError{Field: "month", Err: err}
		}
	}
	return year, month, nil
}
