package notify

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// ErrNotConfigured is returned by the noop channel
var ErrNotConfigured = errors.New("sms channel not configured")

// SMSChannel abstracts SMS delivery providers.
type SMSChannel interface {
	Send(ctx context.Context, receptors []string, message string) (string, error)
}

// Config selects and configures the provider
type Config struct {
	Provider string
	APIKey   string
	Sender   string
}

type noopSMSChannel struct{}

// NewSMSChannel returns an SMS channel implementation based on cfg.Provider.
// Supported providers: "kavenegar" (defaults to noop if not configured or provider not supported).
func NewSMSChannel(cfg Config, log logrus.FieldLogger) SMSChannel {
	switch cfg.Provider {
	case "kavenegar":
		if cfg.APIKey == "" {
			log.Warn("SMS_PROVIDER is 'kavenegar' but SMS_API_KEY is not set, using noop channel")
			return &noopSMSChannel{}
		}
		sender := cfg.Sender
		if sender == "" {
			sender = "10008663"
		}
		log.WithField("sender", sender).Info("Initializing Kavenegar SMS channel")
		return NewKavenegarSMSChannel(cfg.APIKey, sender)
	case "":
		log.Warn("SMS_PROVIDER is not set, using noop channel")
	default:
		log.WithField("provider", cfg.Provider).Warn("Unknown SMS_PROVIDER, using noop channel")
	}
	return &noopSMSChannel{}
}

func (c *noopSMSChannel) Send(ctx context.Context, receptors []string, message string) (string, error) {
	return "", ErrNotConfigured
}
