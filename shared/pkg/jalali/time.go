package jalali

import "time"

// FromTime returns the Jalali date of t's wall clock in t's own location.
// Callers pick the location; no conversion happens here.
func FromTime(t time.Time) (Date, error) {
	return GregorianToJalali(t.Year(), int(t.Month()), t.Day())
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) (time.Time, error) {
	g, err := d.Gregorian()
	if err != nil {
		return time.Time{}, err
	}
	return g.Time(loc), nil
}
