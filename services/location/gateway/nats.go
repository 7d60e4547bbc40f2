package gateway

import (
	"context"
	"fmt"

	"github.com/sentinela-app/sentinela/internal/pkg/constants"
	"github.com/sentinela-app/sentinela/internal/pkg/models"
	natspkg "github.com/sentinela-app/sentinela/internal/pkg/nats"
)

// LocationGW publishes position events to JetStream
type LocationGW struct {
	producer *natspkg.JetStreamProducer
}

// NewLocationGW creates a new location gateway
func NewLocationGW(client *natspkg.Client) *LocationGW {
	return &LocationGW{
		producer: natspkg.NewJetStreamProducer(client),
	}
}

// PublishPositionUpdate publishes a live position sample
func (g *LocationGW) PublishPositionUpdate(ctx context.Context, event *models.PositionUpdateEvent) error {
	if err := g.producer.Publish(ctx, constants.SubjectLocationUpdate, event); err != nil {
		return fmt.Errorf("failed to publish position update: %w", err)
	}
	return nil
}
