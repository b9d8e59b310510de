package notify

import (
	"context"
	"fmt"

	"github.com/kavenegar/kavenegar-go"
)

// messageSender is the part of the Kavenegar message API the channel uses
type messageSender interface {
	Send(sender string, receptor []string, message string, params *kavenegar.MessageSendParam) ([]kavenegar.Message, error)
}

type kavenegarSMSChannel struct {
	messages messageSender
	sender   string
}

// NewKavenegarSMSChannel creates a new Kavenegar SMS channel implementation.
func NewKavenegarSMSChannel(apiKey, sender string) SMSChannel {
	api := kavenegar.New(apiKey)
	return &kavenegarSMSChannel{
		messages: api.Message,
		sender:   sender,
	}
}

func (c *kavenegarSMSChannel) Send(ctx context.Context, receptors []string, message string) (string, error) {
	if len(receptors) == 0 {
		return "", fmt.Errorf("at least one receptor is required")
	}
	if message == "" {
		return "", fmt.Errorf("message is required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	res, err := c.messages.Send(c.sender, receptors, message, nil)
	if err != nil {
		switch err := err.(type) {
		case *kavenegar.APIError:
			return "", fmt.Errorf("kavenegar API error: %w", err)
		case *kavenegar.HTTPError:
			return "", fmt.Errorf("kavenegar HTTP error: %w", err)
		default:
			return "", fmt.Errorf("failed to send SMS: %w", err)
		}
	}

	if len(res) == 0 {
		return "", fmt.Errorf("no response entries from Kavenegar")
	}

	return fmt.Sprintf("%d", res[0].MessageID), nil
}
