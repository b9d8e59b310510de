package helpers

import (
	"fmt"
	"time"

	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/jalali"
)

// FormatJalaliTime formats just the time part H:i
func FormatJalaliTime(t time.Time) string {
	return t.Format("15:04")
}

// ParseJalaliDateTime parses a Jalali datetime string to Gregorian time.Time
// Example: "1403/09/15 14:30:45" -> 2024-12-05 14:30:45
func ParseJalaliDateTime(jalaliDateTime string, loc *time.Location) (time.Time, error) {
	return jalali.ParseDateTime(jalaliDateTime, loc)
}

// JalaliDayRange converts an inclusive Jalali date range into the half-open
// instant range [start, end) in loc.
func JalaliDayRange(from, to jalali.Date, loc *time.Location) (start, end time.Time, err error) {
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("range end %s is before start %s", to, from)
	}
	start, err = from.Time(loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = to.Time(loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end.AddDate(0, 0, 1), nil
}
