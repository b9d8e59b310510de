// Package jalali implements the Solar Hijri (Jalali) calendar: conversion
// to and from the Gregorian calendar, validation, date arithmetic and the
// Persian formatting used across the app.
//
// Both calendars are mapped onto a shared integer day count. Jalali leap
// years follow the fixed 33-year table, which is only trusted between
// MinYear and MaxYear; conversions outside that window fail with
// ErrOutOfSupportedRange.
//
// Every function is pure. Nothing reads the system clock: callers pass the
// current instant in explicitly.
package jalali

import (
	"fmt"
	"time"
)

// Month is a Jalali month, Farvardin=1 … Esfand=12.
type Month int

const (
	Farvardin Month = 1 + iota
	Ordibehesht
	Khordad
	Tir
	Mordad
	Shahrivar
	Mehr
	Aban
	Azar
	Dey
	Bahman
	Esfand
)

var monthNames = [12]string{
	"فروردین", "اردیبهشت", "خرداد",
	"تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر",
	"دی", "بهمن", "اسفند",
}

// String returns the Persian month name.
func (m Month) String() string {
	if m >= Farvardin && m <= Esfand {
		return monthNames[m-1]
	}
	return fmt.Sprintf("%%!Month(%d)", int(m))
}

// Weekday is a day of the Persian week, Shanbe (Saturday)=0 … Jomeh (Friday)=6.
type Weekday int

const (
	Shanbe Weekday = iota
	Yekshanbe
	Doshanbe
	Seshanbe
	Chaharshanbe
	Panjshanbe
	Jomeh
)

var weekdayNames = [7]string{
	"شنبه",
	"یکشنبه",
	"دوشنبه",
	"سه‌شنبه",
	"چهارشنبه",
	"پنجشنبه",
	"جمعه",
}

// String returns the Persian weekday name.
func (w Weekday) String() string {
	if w >= Shanbe && w <= Jomeh {
		return weekdayNames[w]
	}
	return fmt.Sprintf("%%!Weekday(%d)", int(w))
}

// leapPositions are the leap years' positions (year mod 33) in a cycle.
var leapPositions = [...]int{1, 5, 9, 13, 17, 22, 26, 30}

// IsLeapYear reports whether Esfand of year has 30 days.
func IsLeapYear(year int) bool {
	pos := floorMod(year, 33)
	for _, p := range leapPositions {
		if p == pos {
			return true
		}
	}
	return false
}

// DaysInMonth returns the length of month in year, or 0 if month is not 1..12.
func DaysInMonth(year, month int) int {
	switch {
	case month >= 1 && month <= 6:
		return 31
	case month >= 7 && month <= 11:
		return 30
	case month == 12:
		if IsLeapYear(year) {
			return 30
		}
		return 29
	}
	return 0
}

// Date is a validated Jalali calendar date. The zero value is not a valid
// date; use New, Parse, FromTime or GregorianToJalali to obtain one.
//
// Dates are comparable with == and safe to copy.
type Date struct {
	year  int
	month int
	day   int
}

// New returns the date year/month/day, or an error wrapping
// ErrInvalidDateComponents if month or day is out of bounds. Values are
// never normalized into a neighbouring month.
func New(year, month, day int) (Date, error) {
	if month < 1 || month > 12 || day < 1 || day > DaysInMonth(year, month) {
		return Date{}, &DateError{Op: "new", Year: year, Month: month, Day: day, Err: ErrInvalidDateComponents}
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustNew is like New but panics on invalid input. Intended for literals.
func MustNew(year, month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) Year() int    { return d.year }
func (d Date) Month() Month { return Month(d.month) }
func (d Date) Day() int     { return d.day }

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// IsLeapYear reports whether d falls in a leap year.
func (d Date) IsLeapYear() bool { return IsLeapYear(d.year) }

// DaysInMonth returns the length of d's month.
func (d Date) DaysInMonth() int { return DaysInMonth(d.year, d.month) }

// DayOfYear returns the 1-based ordinal of d within its year.
func (d Date) DayOfYear() int { return monthStart(d.month) + d.day }

// MonthName returns the Persian name of d's month.
func (d Date) MonthName() string { return d.Month().String() }

// WeekdayName returns the Persian name of d's weekday.
func (d Date) WeekdayName() string { return d.Weekday().String() }

// Weekday returns the day of the week, counted from Saturday.
func (d Date) Weekday() Weekday {
	y, m, day := daysToGregorian(d.axisDay() + axisOffset)
	wd := time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC).Weekday()
	return Weekday((int(wd) + 1) % 7)
}

// Gregorian returns the equivalent Gregorian date.
func (d Date) Gregorian() (Gregorian, error) {
	n := d.axisDay()
	if !inSupportedRange(n) {
		return Gregorian{}, &DateError{Op: "jalali to gregorian", Year: d.year, Month: d.month, Day: d.day, Err: ErrOutOfSupportedRange}
	}
	y, m, day := daysToGregorian(n + axisOffset)
	return Gregorian{Year: y, Month: m, Day: day}, nil
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return cmpInt(d.year, other.year)
	case d.month != other.month:
		return cmpInt(d.month, other.month)
	default:
		return cmpInt(d.day, other.day)
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }
func (d Date) Equal(other Date) bool  { return d == other }

func (d Date) axisDay() int {
	return jalaliToDays(d.year, d.month, d.day)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
