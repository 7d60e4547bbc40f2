package gateway

import (
	"context"
	"fmt"

	"github.com/sentinela-app/sentinela/internal/pkg/constants"
	"github.com/sentinela-app/sentinela/internal/pkg/models"
	natspkg "github.com/sentinela-app/sentinela/internal/pkg/nats"
)

// AlertGW publishes alert lifecycle events to JetStream
type AlertGW struct {
	producer *natspkg.JetStreamProducer
}

// NewAlertGW creates a new alert gateway
func NewAlertGW(client *natspkg.Client) *AlertGW {
	return &AlertGW{
		producer: natspkg.NewJetStreamProducer(client),
	}
}

// PublishAlertCreated publishes an alert created event
func (g *AlertGW) PublishAlertCreated(ctx context.Context, event *models.AlertCreatedEvent) error {
	if err := g.producer.Publish(ctx, constants.SubjectAlertCreated, event); err != nil {
		return fmt.Errorf("failed to publish alert created event: %w", err)
	}
	return nil
}

// PublishAlertStatus publishes a status transition event
func (g *AlertGW) PublishAlertStatus(ctx context.Context, event *models.AlertStatusEvent) error {
	if err := g.producer.Publish(ctx, constants.SubjectAlertStatus, event); err != nil {
		return fmt.Errorf("failed to publish alert status event: %w", err)
	}
	return nil
}
