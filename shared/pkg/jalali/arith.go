package jalali

// AddDays returns d shifted by n days (n may be negative). The shift is done
// on the Gregorian day count and mapped back, so month lengths never need
// to be walked by hand.
func (d Date) AddDays(n int) Date {
	g := gregorianToDays(daysToGregorian(d.axisDay() + axisOffset))
	return fromAxis(g + n - axisOffset)
}

// SubtractDays returns d shifted back by n days.
func (d Date) SubtractDays(n int) Date {
	return d.AddDays(-n)
}

// AddMonths returns d shifted by n months. When the target month is shorter
// than d's day, the day is clamped to the month's last day: 1403/06/31 plus
// one month is 1403/07/30.
func (d Date) AddMonths(n int) Date {
	total := d.year*12 + (d.month - 1) + n
	year, month := floorDiv(total, 12), floorMod(total, 12)+1
	return Date{year: year, month: month, day: min(d.day, DaysInMonth(year, month))}
}

// SubtractMonths returns d shifted back by n months, clamping like AddMonths.
func (d Date) SubtractMonths(n int) Date {
	return d.AddMonths(-n)
}

// AddYears returns d shifted by n years. 30 Esfand becomes 29 Esfand when the
// target year is not leap.
func (d Date) AddYears(n int) Date {
	return d.AddMonths(12 * n)
}

// FirstOfMonth returns the first day of d's month.
func (d Date) FirstOfMonth() Date {
	return Date{year: d.year, month: d.month, day: 1}
}

// LastOfMonth returns the last day of d's month.
func (d Date) LastOfMonth() Date {
	return Date{year: d.year, month: d.month, day: d.DaysInMonth()}
}

// DaysBetween returns the number of days from a to b; negative when b is
// before a.
func DaysBetween(a, b Date) int {
	return b.axisDay() - a.axisDay()
}
