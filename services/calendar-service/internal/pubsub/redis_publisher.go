package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"

	"github.com/Ag1rin/TazeinDecor-sub002/services/calendar-service/internal/models"
)

// InstallationChannel is the Redis channel the WebSocket relay subscribes to
const InstallationChannel = "installation-changed"

// Publisher handles publishing installation events for WebSocket broadcasting
type Publisher interface {
	PublishInstallationChanged(ctx context.Context, event models.InstallationEvent) error
	Close() error
}

type redisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher creates a new Redis publisher
func NewRedisPublisher(ctx context.Context, redisURL string) (Publisher, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	// Maint notifications are not available in Redis 7
	opts.MaintNotificationsConfig = &maintnotifications.Config{
		Mode: maintnotifications.ModeDisabled,
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisPublisher{client: client}, nil
}

// PublishInstallationChanged publishes the event as JSON on InstallationChannel
func (p *redisPublisher) PublishInstallationChanged(ctx context.Context, event models.InstallationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.client.Publish(ctx, InstallationChannel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis: %w", err)
	}

	return nil
}

// Ping checks the Redis connection
func (p *redisPublisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (p *redisPublisher) Close() error {
	return p.client.Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event, for deployments without Redis
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishInstallationChanged(context.Context, models.InstallationEvent) error {
	return nil
}

func (noopPublisher) Close() error { return nil }
