package jalali

import (
	"fmt"
	"time"

	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/digits"
)

// String formats d as Y/m/d with zero-padded month and day, e.g. 1403/09/15.
func (d Date) String() string {
	return fmt.Sprintf("%d/%02d/%02d", d.year, d.month, d.day)
}

// Format formats d as Y/m/d, e.g. 1403/09/15.
func Format(d Date) string { return d.String() }

// FormatDateTime formats d followed by clock's HH:mm, e.g. 1403/09/15 14:30.
// Only the hour and minute of clock are used.
func FormatDateTime(d Date, clock time.Time) string {
	return fmt.Sprintf("%s %02d:%02d", d, clock.Hour(), clock.Minute())
}

// FormatDateTimeFull is FormatDateTime with seconds, e.g. 1403/09/15 14:30:45.
func FormatDateTimeFull(d Date, clock time.Time) string {
	return fmt.Sprintf("%s %02d:%02d:%02d", d, clock.Hour(), clock.Minute(), clock.Second())
}

// FormatNamed formats d with its month name, e.g. 15 آذر 1403.
func FormatNamed(d Date) string {
	return fmt.Sprintf("%d %s %d", d.day, d.MonthName(), d.year)
}

// FormatNamedWeekday prefixes FormatNamed with the weekday name,
// e.g. پنجشنبه 15 آذر 1403.
func FormatNamedWeekday(d Date) string {
	return d.WeekdayName() + " " + FormatNamed(d)
}

// Formatter renders dates in one digit set. The zero value uses ASCII
// digits; set PersianDigits for ۱۴۰۳/۰۹/۱۵ style output. Digit substitution
// is always the final step, applied to the composed string.
type Formatter struct {
	PersianDigits bool
}

// Persian is a Formatter producing Persian digits.
var Persian = Formatter{PersianDigits: true}

func (f Formatter) Date(d Date) string { return f.localize(Format(d)) }

func (f Formatter) DateTime(d Date, clock time.Time) string {
	return f.localize(FormatDateTime(d, clock))
}

func (f Formatter) DateTimeFull(d Date, clock time.Time) string {
	return f.localize(FormatDateTimeFull(d, clock))
}

func (f Formatter) Named(d Date) string { return f.localize(FormatNamed(d)) }

func (f Formatter) NamedWeekday(d Date) string { return f.localize(FormatNamedWeekday(d)) }

func (f Formatter) Relative(then, now time.Time) string {
	return f.localize(RelativeTime(then, now))
}

// Instant formats the wall clock of t as Jalali date and HH:mm.
func (f Formatter) Instant(t time.Time) (string, error) {
	d, err := FromTime(t)
	if err != nil {
		return "", err
	}
	return f.DateTime(d, t), nil
}

func (f Formatter) localize(s string) string {
	if f.PersianDigits {
		return digits.ToPersian(s)
	}
	return s
}
