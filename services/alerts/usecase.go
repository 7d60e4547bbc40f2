package alerts

import (
	"context"

	"github.com/sentinela-app/sentinela/internal/pkg/models"
)

// AlertUC defines the interface for alert lifecycle business logic
type AlertUC interface {
	// Subject-side operations
	CreateAlert(ctx context.Context, subjectID string, req models.CreateAlertRequest) (*models.Alert, error)
	RequestTermination(ctx context.Context, alertID, subjectID string, req models.TerminationRequest) (*models.IssuedToken, error)

	// Desk-side operations
	GetAlert(ctx context.Context, alertID string) (*models.Alert, error)
	ClaimAlert(ctx context.Context, alertID, operatorID string) (*models.Alert, error)
	ValidateTermination(ctx context.Context, alertID, operatorID string, req models.ValidateTerminationRequest) (*models.Alert, error)
	RejectTermination(ctx context.Context, alertID, operatorID string) (*models.Alert, error)
	CloseAlert(ctx context.Context, alertID, operatorID string, req models.CloseAlertRequest) (*models.Alert, error)

	// Internal operations for sibling services
	GetAlertSummary(ctx context.Context, alertID string) (*models.AlertSummary, error)
	IssueDelegationToken(ctx context.Context, req models.IssueTokenRequest) (*models.IssuedToken, error)
	ResolveDelegationToken(ctx context.Context, code string) (*models.AccessToken, error)

	// Maintenance
	SweepExpiredTokens(ctx context.Context) error
}
