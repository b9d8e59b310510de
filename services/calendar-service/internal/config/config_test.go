package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_PORT", "REMINDER_HOUR", "SHUTDOWN_TIMEOUT", "CALENDAR_TIMEZONE", "HTTP_PORT", "REDIS_URL", "SMS_PROVIDER", "REMINDER_RECEPTORS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8060", cfg.Server.HTTPPort)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "Asia/Tehran", cfg.Calendar.Location.String())
	assert.Equal(t, 18, cfg.Calendar.ReminderHour)
	assert.Empty(t, cfg.Redis.URL)
	assert.Empty(t, cfg.SMS.Provider)
	assert.Nil(t, cfg.SMS.Receptors)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("CALENDAR_TIMEZONE", "UTC")
	t.Setenv("REMINDER_HOUR", "-1")
	t.Setenv("REDIS_URL", "redis://redis:6379/0")
	t.Setenv("SMS_PROVIDER", "kavenegar")
	t.Setenv("SMS_API_KEY", "secret")
	t.Setenv("REMINDER_RECEPTORS", " 09121234567, ,09351234567 ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.HTTPPort)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.Equal(t, time.UTC, cfg.Calendar.Location)
	assert.Equal(t, -1, cfg.Calendar.ReminderHour)
	assert.Equal(t, "redis://redis:6379/0", cfg.Redis.URL)
	assert.Equal(t, "kavenegar", cfg.SMS.Provider)
	assert.Equal(t, "secret", cfg.SMS.APIKey)
	assert.Equal(t, []string{"09121234567", "09351234567"}, cfg.SMS.Receptors)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"DB_PORT":           "abc",
		"REMINDER_HOUR":     "24",
		"SHUTDOWN_TIMEOUT":  "soon",
		"CALENDAR_TIMEZONE": "Mars/Olympus",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
