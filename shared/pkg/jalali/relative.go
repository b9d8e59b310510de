package jalali

import (
	"fmt"
	"time"
)

const justNow = "همین الان"

const oneDay = 24 * time.Hour

// RelativeTime describes then relative to now in Persian, using the largest
// unit that fits: years, months, days, hours, then minutes. Anything under
// a minute in either direction is "همین الان". Past instants read
// "3 روز پیش", future ones "تا 5 روز دیگر".
//
// Months and years are 30 and 365 day buckets, not calendar months.
func RelativeTime(then, now time.Time) string {
	diff := now.Sub(then)
	future := diff < 0
	if future {
		diff = -diff
	}

	amount, unit := relativeBucket(diff)
	if unit == "" {
		return justNow
	}
	if future {
		return fmt.Sprintf("تا %d %s دیگر", amount, unit)
	}
	return fmt.Sprintf("%d %s پیش", amount, unit)
}

func relativeBucket(diff time.Duration) (int, string) {
	days := int(diff / oneDay)
	switch {
	case days >= 365:
		return days / 365, "سال"
	case days >= 30:
		return days / 30, "ماه"
	case days >= 1:
		return days, "روز"
	case diff >= time.Hour:
		return int(diff / time.Hour), "ساعت"
	case diff >= time.Minute:
		return int(diff / time.Minute), "دقیقه"
	}
	return 0, ""
}
