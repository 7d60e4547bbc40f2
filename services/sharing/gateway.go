package sharing

import (
	"context"

	"github.com/sentinela-app/sentinela/internal/pkg/models"
)

// AlertsGW defines the interface for calling the alerts service's
// internal API
type AlertsGW interface {
	IssueDelegationToken(ctx context.Context, req models.IssueTokenRequest) (*models.IssuedToken, error)
	ResolveDelegationToken(ctx context.Context, code string) (*models.AccessToken, error)
	GetAlertSummary(ctx context.Context, alertID string) (*models.AlertSummary, error)
}

// LocationGW defines the interface for calling the location service's
// internal API
type LocationGW interface {
	LatestPosition(ctx context.Context, alertID string) (*models.Position, error)
}
