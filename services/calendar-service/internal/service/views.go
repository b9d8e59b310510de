package service

import (
	"time"

	"github.com/Ag1rin/TazeinDecor-sub002/services/calendar-service/internal/models"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/helpers"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/jalali"
)

// DateView describes one calendar day in both calendars
type DateView struct {
	Jalali      string `json:"jalali"`
	JalaliFa    string `json:"jalali_fa"`
	Gregorian   string `json:"gregorian"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Day         int    `json:"day"`
	MonthName   string `json:"month_name"`
	Weekday     int    `json:"weekday"` // 0 = Saturday
	WeekdayName string `json:"weekday_name"`
	Label       string `json:"label"`
	LeapYear    bool   `json:"leap_year"`
}

// InstallationView is an installation rendered for the Persian UI
type InstallationView struct {
	ID               int64      `json:"id"`
	OrderID          uint64     `json:"order_id"`
	OrderNumber      *string    `json:"order_number"`
	InstallationDate time.Time  `json:"installation_date"`
	Date             string     `json:"date"`
	DateFa           string     `json:"date_fa"`
	Time             string     `json:"time"`
	Label            string     `json:"label"`
	Relative         string     `json:"relative"`
	Notes            *string    `json:"notes"`
	Color            *string    `json:"color"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
}

// DayView is one cell of a month grid
type DayView struct {
	DateView
	Today         bool               `json:"today"`
	Installations []InstallationView `json:"installations"`
}

// MonthView is a full Jalali month
type MonthView struct {
	Year         int       `json:"year"`
	Month        int       `json:"month"`
	MonthName    string    `json:"month_name"`
	Title        string    `json:"title"` // آذر ۱۴۰۳
	LeapYear     bool      `json:"leap_year"`
	DaysInMonth  int       `json:"days_in_month"`
	FirstWeekday int       `json:"first_weekday"`
	Days         []DayView `json:"days"`
}

// TomorrowView lists the installations due on the day after "now"
type TomorrowView struct {
	Date          DateView           `json:"date"`
	Count         int                `json:"count"`
	Installations []InstallationView `json:"installations"`
}

func newDateView(d jalali.Date) DateView {
	v := DateView{
		Jalali:      jalali.Format(d),
		JalaliFa:    jalali.Persian.Date(d),
		Year:        d.Year(),
		Month:       int(d.Month()),
		Day:         d.Day(),
		MonthName:   d.MonthName(),
		Weekday:     int(d.Weekday()),
		WeekdayName: d.WeekdayName(),
		Label:       jalali.FormatNamedWeekday(d),
		LeapYear:    d.IsLeapYear(),
	}
	if g, err := d.Gregorian(); err == nil {
		v.Gregorian = g.String()
	}
	return v
}

// newInstallationView renders inst in loc. Dates outside the supported Jalali
// range keep their Gregorian instant and leave the Jalali fields empty.
func newInstallationView(inst *models.Installation, loc *time.Location, now time.Time) InstallationView {
	local := inst.InstallationDate.In(loc)
	v := InstallationView{
		ID:               inst.ID,
		OrderID:          inst.OrderID,
		OrderNumber:      inst.OrderNumber,
		InstallationDate: local,
		Time:             helpers.FormatJalaliTime(local),
		Relative:         jalali.RelativeTime(local, now),
		Notes:            inst.Notes,
		Color:            inst.Color,
		CreatedAt:        inst.CreatedAt.In(loc),
		UpdatedAt:        inst.UpdatedAt,
	}
	if d, err := jalali.FromTime(local); err == nil {
		v.Date = jalali.Format(d)
		v.DateFa = jalali.Persian.Date(d)
		v.Label = jalali.FormatNamedWeekday(d)
	}
	return v
}

func newInstallationViews(list []*models.Installation, loc *time.Location, now time.Time) []InstallationView {
	views := make([]InstallationView, 0, len(list))
	for _, inst := range list {
		views = append(views, newInstallationView(inst, loc, now))
	}
	return views
}
