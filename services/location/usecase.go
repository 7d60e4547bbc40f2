package location

import (
	"context"
	"time"

	"github.com/sentinela-app/sentinela/internal/pkg/models"
)

// LocationUC defines the interface for position stream business logic
type LocationUC interface {
	// AppendPosition stores a position sample for the alert. Samples on
	// terminal alerts are stored for audit but never published.
	AppendPosition(ctx context.Context, alertID string, req models.AppendPositionRequest) (*models.PositionSample, error)

	// LatestPosition returns the most recent sample for the alert.
	LatestPosition(ctx context.Context, alertID string) (*models.Position, error)

	// GetPositionHistory returns the alert's samples within a time range.
	GetPositionHistory(ctx context.Context, alertID string, startTime, endTime time.Time) ([]*models.PositionSample, error)

	// NearbyAlerts returns alert IDs whose latest position falls within
	// radiusKm of the given point.
	NearbyAlerts(ctx context.Context, position *models.Position, radiusKm float64) ([]models.NearbyAlert, error)

	// SyncAlertStatus records the alert's current status in the cache.
	// Driven by the status-sync consumer, not by HTTP callers.
	SyncAlertStatus(ctx context.Context, alertID string, status models.AlertStatus) error
}
