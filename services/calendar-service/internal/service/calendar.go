package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/digits"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/jalali"
)

// Calendar answers date-only questions in a fixed location. It needs no storage.
type Calendar struct {
	loc *time.Location
}

func NewCalendar(loc *time.Location) *Calendar {
	return &Calendar{loc: loc}
}

// Location returns the location calendar days are cut in
func (c *Calendar) Location() *time.Location { return c.loc }

// Date returns the Jalali date of now in the calendar's location
func (c *Calendar) Date(now time.Time) (jalali.Date, error) {
	return jalali.FromTime(now.In(c.loc))
}

// Today describes the Jalali date of now
func (c *Calendar) Today(now time.Time) (DateView, error) {
	d, err := c.Date(now)
	if err != nil {
		return DateView{}, err
	}
	return newDateView(d), nil
}

// ConvertGregorian converts a YYYY-MM-DD Gregorian date (any digit set)
func (c *Calendar) ConvertGregorian(s string) (DateView, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(digits.ToEnglish(s)))
	if err != nil {
		return DateView{}, invalidField("gregorian", jalali.ErrUnparsableString)
	}

	d, err := jalali.GregorianToJalali(t.Year(), int(t.Month()), t.Day())
	if err != nil {
		return DateView{}, invalidField("gregorian", err)
	}
	return newDateView(d), nil
}

// ConvertJalali converts a Y/m/d Jalali date (any digit set)
func (c *Calendar) ConvertJalali(s string) (DateView, error) {
	d, err := parseSupportedDate(s)
	if err != nil {
		return DateView{}, invalidField("jalali", err)
	}
	return newDateView(d), nil
}

// Month lays out every day of a Jalali month, flagging the day of now
func (c *Calendar) Month(year, month int, now time.Time) (MonthView, error) {
	if month < 1 || month > 12 {
		return MonthView{}, invalidField("month", jalali.ErrInvalidDateComponents)
	}
	if year < jalali.MinYear || year > jalali.MaxYear {
		return MonthView{}, invalidField("year", jalali.ErrOutOfSupportedRange)
	}

	first := jalali.MustNew(year, month, 1)
	today, _ := c.Date(now)

	view := MonthView{
		Year:         year,
		Month:        month,
		MonthName:    first.MonthName(),
		Title:        digits.ToPersian(fmt.Sprintf("%s %d", first.MonthName(), year)),
		LeapYear:     first.IsLeapYear(),
		DaysInMonth:  first.DaysInMonth(),
		FirstWeekday: int(first.Weekday()),
		Days:         make([]DayView, 0, first.DaysInMonth()),
	}
	for d := first; d.Month() == first.Month() && d.Year() == year; d = d.AddDays(1) {
		view.Days = append(view.Days, DayView{
			DateView:      newDateView(d),
			Today:         d == today,
			Installations: []InstallationView{},
		})
	}
	return view, nil
}

// parseSupportedDate parses s and rejects dates the converter cannot map
func parseSupportedDate(s string) (jalali.Date, error) {
	d, err := jalali.Parse(s)
	if err != nil {
		return jalali.Date{}, err
	}
	if _, err := d.Gregorian(); err != nil {
		return jalali.Date{}, err
	}
	return d, nil
}
