package location

import (
	"context"

	"github.com/sentinela-app/sentinela/internal/pkg/models"
)

// LocationGW defines the interface for publishing position events
type LocationGW interface {
	PublishPositionUpdate(ctx context.Context, event *models.PositionUpdateEvent) error
}
