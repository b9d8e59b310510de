package jalali

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 12, 5, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		then time.Time
		want string
	}{
		{"same instant", now, "همین الان"},
		{"seconds ago", now.Add(-40 * time.Second), "همین الان"},
		{"seconds ahead", now.Add(40 * time.Second), "همین الان"},
		{"minutes ago", now.Add(-5 * time.Minute), "5 دقیقه پیش"},
		{"hours ago", now.Add(-2 * time.Hour), "2 ساعت پیش"},
		{"just under a day", now.Add(-23*time.Hour - 59*time.Minute), "23 ساعت پیش"},
		{"days ago", now.Add(-3 * 24 * time.Hour), "3 روز پیش"},
		{"months ago", now.Add(-65 * 24 * time.Hour), "2 ماه پیش"},
		{"years ago", now.Add(-800 * 24 * time.Hour), "2 سال پیش"},
		{"in minutes", now.Add(10 * time.Minute), "تا 10 دقیقه دیگر"},
		{"in hours", now.Add(3 * time.Hour), "تا 3 ساعت دیگر"},
		{"in days", now.Add(5 * 24 * time.Hour), "تا 5 روز دیگر"},
		{"in months", now.Add(31 * 24 * time.Hour), "تا 1 ماه دیگر"},
		{"in a year", now.Add(366 * 24 * time.Hour), "تا 1 سال دیگر"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(tt.then, now))
		})
	}
}

func TestRelativeTime_PersianDigits(t *testing.T) {
	now := time.Date(2024, 12, 5, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "۲ ساعت پیش", Persian.Relative(now.Add(-2*time.Hour), now))
	assert.Equal(t, "تا ۵ روز دیگر", Persian.Relative(now.Add(5*24*time.Hour), now))
}
