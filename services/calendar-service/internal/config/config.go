package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/Ag1rin/TazeinDecor-sub002/services/calendar-service/internal/notify"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/db"
)

// Config is the calendar service configuration, read from the environment
type Config struct {
	Server   ServerConfig
	Database db.Config
	Redis    RedisConfig
	SMS      SMSConfig
	Calendar CalendarConfig
}

type ServerConfig struct {
	HTTPPort        string
	ShutdownTimeout time.Duration
}

type RedisConfig struct {
	URL string // empty disables event publishing
}

type SMSConfig struct {
	notify.Config
	Receptors []string // reminder recipients
}

type CalendarConfig struct {
	Timezone     string
	Location     *time.Location
	ReminderHour int // local hour for the daily reminder, -1 disables it
}

// Load reads the configuration. It fails only on malformed values.
func Load() (*Config, error) {
	port, err := getEnvInt("DB_PORT", 3306)
	if err != nil {
		return nil, err
	}
	reminderHour, err := getEnvInt("REMINDER_HOUR", 18)
	if err != nil {
		return nil, err
	}
	if reminderHour < -1 || reminderHour > 23 {
		return nil, fmt.Errorf("REMINDER_HOUR must be between -1 and 23, got %d", reminderHour)
	}
	shutdown, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	tz := getEnv("CALENDAR_TIMEZONE", "Asia/Tehran")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid CALENDAR_TIMEZONE %q: %w", tz, err)
	}

	return &Config{
		Server: ServerConfig{
			HTTPPort:        getEnv("HTTP_PORT", "8060"),
			ShutdownTimeout: shutdown,
		},
		Database: db.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_DATABASE", "tazeindecor"),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
		},
		SMS: SMSConfig{
			Config: notify.Config{
				Provider: getEnv("SMS_PROVIDER", ""),
				APIKey:   getEnv("SMS_API_KEY", ""),
				Sender:   getEnv("SMS_SENDER", ""),
			},
			Receptors: splitList(getEnv("REMINDER_RECEPTORS", "")),
		},
		Calendar: CalendarConfig{
			Timezone:     tz,
			Location:     loc,
			ReminderHour: reminderHour,
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
