package jalali

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDateComponents is returned when a month is outside 1..12 or a
	// day exceeds the month's length in that year.
	ErrInvalidDateComponents = errors.New("invalid date components")

	// ErrUnparsableString is returned when a string does not have the
	// Y/m/d shape after digit normalization.
	ErrUnparsableString = errors.New("unparsable date string")

	// ErrOutOfSupportedRange is returned for conversions outside
	// MinYear..MaxYear, where the 33-year leap table is not trusted.
	ErrOutOfSupportedRange = errors.New("date outside supported range")
)

// DateError records a rejected date triple and the operation that rejected it.
type DateError struct {
	Op    string
	Year  int
	Month int
	Day   int
	Err   error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("jalali: %s %d/%02d/%02d: %v", e.Op, e.Year, e.Month, e.Day, e.Err)
}

func (e *DateError) Unwrap() error { return e.Err }

// ParseError records the input that failed to parse.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("jalali: parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
