package location

import (
	"context"
	"time"

	"github.com/sentinela-app/sentinela/internal/pkg/models"
)

// PositionRepo defines the interface for append-only position
// persistence. Samples are immutable once written.
type PositionRepo interface {
	AppendPosition(ctx context.Context, sample *models.PositionSample) error
	GetLatestPosition(ctx context.Context, alertID string) (*models.PositionSample, error)
	GetPositionHistory(ctx context.Context, alertID string, startTime, endTime time.Time) ([]*models.PositionSample, error)
}

// PositionCache defines the interface for the Redis hot path: latest
// position per alert, the alert status cache fed by the status-sync
// consumer, and the geo index of live alerts.
type PositionCache interface {
	SetLatestPosition(ctx context.Context, alertID string, position *models.Position) error
	GetLatestPosition(ctx context.Context, alertID string) (*models.Position, error)

	SetAlertStatus(ctx context.Context, alertID string, status models.AlertStatus) error
	GetAlertStatus(ctx context.Context, alertID string) (models.AlertStatus, error)

	AddToGeoIndex(ctx context.Context, alertID string, longitude, latitude float64) error
	NearbyAlerts(ctx context.Context, longitude, latitude, radiusKm float64) ([]models.NearbyAlert, error)
	RemoveLatestPosition(ctx context.Context, alertID string) error
}
