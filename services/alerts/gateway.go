package alerts

import (
	"context"

	"github.com/sentinela-app/sentinela/internal/pkg/models"
)

// AlertGW defines the interface for publishing alert events.
// Events are published after the database commit; JetStream gives
// at-least-once delivery so consumers must tolerate duplicates.
type AlertGW interface {
	PublishAlertCreated(ctx context.Context, event *models.AlertCreatedEvent) error
	PublishAlertStatus(ctx context.Context, event *models.AlertStatusEvent) error
}
