package jalali

import (
	"fmt"
	"time"
)

// Supported window. The fixed 33-year leap table matches the observed
// calendar for these years; outside them conversions are refused.
const (
	MinYear = 1300 // 1921-03-21
	MaxYear = 1500 // ends 2122-03-20
)

const (
	daysPerCycle  = 33*365 + 8 // 12053
	daysPer4Years = 4*365 + 1  // 1461

	// The Jalali day axis counts from the first day of year -11, which sits
	// at position 0 of a 33-year cycle. Inside a cycle the first year of every
	// 4-year block is leap, except the 33rd year which closes the cycle.
	cycleOriginYear = -11

	// axisOffset maps the Jalali axis onto the Gregorian one, whose day 0 is
	// 0001-01-01. Anchored on 1403/01/01 == 2024-03-20.
	axisOffset = 222511

	firstHalfDays = 6 * 31 // days in months 1..6
)

var gregorianCumulative = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

var (
	minAxisDay = jalaliToDays(MinYear, 1, 1)
	maxAxisDay = jalaliToDays(MaxYear, 12, DaysInMonth(MaxYear, 12))
)

// Gregorian is a proleptic Gregorian calendar date.
type Gregorian struct {
	Year  int
	Month int
	Day   int
}

// String formats g as YYYY-MM-DD.
func (g Gregorian) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", g.Year, g.Month, g.Day)
}

// Time returns midnight of g in loc.
func (g Gregorian) Time(loc *time.Location) time.Time {
	return time.Date(g.Year, time.Month(g.Month), g.Day, 0, 0, 0, 0, loc)
}

// GregorianToJalali converts a Gregorian date to its Jalali equivalent.
func GregorianToJalali(year, month, day int) (Date, error) {
	if !validGregorian(year, month, day) {
		return Date{}, &DateError{Op: "gregorian to jalali", Year: year, Month: month, Day: day, Err: ErrInvalidDateComponents}
	}

	n := gregorianToDays(year, month, day) - axisOffset
	if n < minAxisDay || n > maxAxisDay {
		return Date{}, &DateError{Op: "gregorian to jalali", Year: year, Month: month, Day: day, Err: ErrOutOfSupportedRange}
	}

	return fromAxis(n), nil
}

// JalaliToGregorian converts a Jalali date to its Gregorian equivalent.
func JalaliToGregorian(year, month, day int) (Gregorian, error) {
	d, err := New(year, month, day)
	if err != nil {
		return Gregorian{}, err
	}
	return d.Gregorian()
}

// MinDate returns the first supported Jalali date.
func MinDate() Date { return Date{year: MinYear, month: 1, day: 1} }

// MaxDate returns the last supported Jalali date.
func MaxDate() Date { return fromAxis(maxAxisDay) }

func inSupportedRange(n int) bool {
	return n >= minAxisDay && n <= maxAxisDay
}

// jalaliToDays returns the position of a Jalali date on the Jalali axis.
// The date must already be valid.
func jalaliToDays(year, month, day int) int {
	n := year - cycleOriginYear
	days := 365*n + 8*floorDiv(n, 33) + (floorMod(n, 33)+3)/4
	return days + monthStart(month) + day - 1
}

// daysToJalali is the inverse of jalaliToDays.
func daysToJalali(n int) (year, month, day int) {
	cycles := floorDiv(n, daysPerCycle)
	rem := n - cycles*daysPerCycle

	year = 33*cycles + 4*(rem/daysPer4Years)
	rem %= daysPer4Years

	// The leading year of a block has 366 days.
	if rem > 365 {
		year += (rem - 1) / 365
		rem = (rem - 1) % 365
	}
	year += cycleOriginYear

	if rem < firstHalfDays {
		return year, 1 + rem/31, 1 + rem%31
	}
	rem -= firstHalfDays
	return year, 7 + rem/30, 1 + rem%30
}

func monthStart(month int) int {
	if month <= 6 {
		return (month - 1) * 31
	}
	return firstHalfDays + (month-7)*30
}

func fromAxis(n int) Date {
	y, m, d := daysToJalali(n)
	return Date{year: y, month: m, day: d}
}

// gregorianToDays counts days since 0001-01-01.
func gregorianToDays(year, month, day int) int {
	y := year - 1
	n := 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400)
	n += gregorianCumulative[month-1] + day - 1
	if month > 2 && isGregorianLeap(year) {
		n++
	}
	return n
}

// daysToGregorian is the inverse of gregorianToDays.
func daysToGregorian(n int) (year, month, day int) {
	quads := floorDiv(n, 146097)
	rem := n - quads*146097

	centuries := rem / 36524
	if centuries == 4 {
		centuries = 3
	}
	rem -= centuries * 36524

	fours := rem / 1461
	rem -= fours * 1461

	years := rem / 365
	if years == 4 {
		years = 3
	}
	rem -= years * 365

	year = 400*quads + 100*centuries + 4*fours + years + 1

	month = 1
	for month < 12 && rem >= gregorianDaysInMonth(year, month) {
		rem -= gregorianDaysInMonth(year, month)
		month++
	}
	return year, month, rem + 1
}

func isGregorianLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func gregorianDaysInMonth(year, month int) int {
	switch month {
	case 2:
		if isGregorianLeap(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func validGregorian(year, month, day int) bool {
	return month >= 1 && month <= 12 && day >= 1 && day <= gregorianDaysInMonth(year, month)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
