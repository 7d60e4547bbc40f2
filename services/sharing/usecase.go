package sharing

import (
	"context"

	"github.com/sentinela-app/sentinela/internal/pkg/models"
)

// SharingUC defines the interface for delegation business logic
type SharingUC interface {
	// ShareAlert mints a delegation token bound to a named viewer.
	ShareAlert(ctx context.Context, operatorID string, req models.ShareRequest) (*models.ShareResponse, error)

	// ResolveShare exchanges a delegation token for the read-only view.
	// Every failure mode surfaces as ErrShareInvalid.
	ResolveShare(ctx context.Context, token string) (*models.DelegationView, error)
}
