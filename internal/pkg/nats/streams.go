package nats

import (
	"context"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/sentinela-app/sentinela/internal/pkg/constants"
)

// AlertStreamConfigs returns the stream definitions every deployable relies on.
// The alerts stream is file-backed because status transitions double as an
// audit trail; the location stream is memory-backed and short-lived since
// positions are superseded within seconds.
func AlertStreamConfigs() []jetstream.StreamConfig {
	return []jetstream.StreamConfig{
		{
			Name:      constants.StreamAlerts,
			Subjects:  []string{"alert.>"},
			Storage:   jetstream.FileStorage,
			Retention: jetstream.LimitsPolicy,
			MaxAge:    7 * 24 * time.Hour,
		},
		{
			Name:      constants.StreamLocation,
			Subjects:  []string{"location.>"},
			Storage:   jetstream.MemoryStorage,
			Retention: jetstream.LimitsPolicy,
			MaxAge:    10 * time.Minute,
		},
	}
}

// EnsureStreams creates or updates all application streams
func (c *Client) EnsureStreams(ctx context.Context) error {
	for _, cfg := range AlertStreamConfigs() {
		if err := c.EnsureStream(ctx, cfg); err != nil {
			return err
		}
	}
	return nil
}
