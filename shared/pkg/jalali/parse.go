package jalali

import (
	"strconv"
	"strings"
	"time"

	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/digits"
)

// Parse parses a Y/m/d Jalali date such as "1403/09/15" or "۱۴۰۳/۹/۱۵".
// Persian and Arabic-Indic digits are accepted; surrounding whitespace is
// ignored. Failures are *ParseError values wrapping ErrUnparsableString or
// ErrInvalidDateComponents.
func Parse(s string) (Date, error) {
	fields, ok := splitNumbers(strings.TrimSpace(digits.ToEnglish(s)), "/", 3)
	if !ok {
		return Date{}, &ParseError{Input: s, Err: ErrUnparsableString}
	}

	d, err := New(fields[0], fields[1], fields[2])
	if err != nil {
		return Date{}, &ParseError{Input: s, Err: err}
	}
	return d, nil
}

// ParseClock parses "HH:mm" or "HH:mm:ss" (24-hour, any digit set).
func ParseClock(s string) (hour, minute, second int, err error) {
	fields, ok := splitNumbers(strings.TrimSpace(digits.ToEnglish(s)), ":", 2)
	if !ok {
		fields, ok = splitNumbers(strings.TrimSpace(digits.ToEnglish(s)), ":", 3)
	}
	if !ok {
		return 0, 0, 0, &ParseError{Input: s, Err: ErrUnparsableString}
	}
	if len(fields) == 3 {
		second = fields[2]
	}
	hour, minute = fields[0], fields[1]
	if hour > 23 || minute > 59 || second > 59 {
		return 0, 0, 0, &ParseError{Input: s, Err: ErrInvalidDateComponents}
	}
	return hour, minute, second, nil
}

// ParseDateTime parses "Y/m/d", "Y/m/d H:i" or "Y/m/d H:i:s" and returns the
// Gregorian instant with that wall clock in loc. No zone conversion is
// applied; loc only labels the result.
func ParseDateTime(s string, loc *time.Location) (time.Time, error) {
	datePart, clockPart, hasClock := strings.Cut(strings.TrimSpace(s), " ")

	d, err := Parse(datePart)
	if err != nil {
		return time.Time{}, err
	}

	var hour, minute, second int
	if hasClock {
		hour, minute, second, err = ParseClock(clockPart)
		if err != nil {
			return time.Time{}, &ParseError{Input: s, Err: err}
		}
	}

	g, err := d.Gregorian()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(g.Year, time.Month(g.Month), g.Day, hour, minute, second, 0, loc), nil
}

// splitNumbers splits s on sep into exactly n unsigned decimal fields.
func splitNumbers(s, sep string, n int) ([]int, bool) {
	parts := strings.Split(s, sep)
	if len(parts) != n {
		return nil, false
	}

	fields := make([]int, n)
	for i, part := range parts {
		if part == "" || len(part) > 9 || strings.TrimLeft(part, "0123456789") != "" {
			return nil, false
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, false
		}
		fields[i] = v
	}
	return fields, true
}
