package alerts

import (
	"context"
	"time"

	"github.com/sentinela-app/sentinela/internal/pkg/models"
)

// AlertRepo defines the interface for alert persistence.
// Status transitions are compare-and-swap updates: every mutating call
// reports how many rows it touched so the use case can distinguish a
// won race from a lost one.
type AlertRepo interface {
	CreateAlert(ctx context.Context, alert *models.Alert) error
	GetAlert(ctx context.Context, alertID string) (*models.Alert, error)
	GetOpenAlertBySubject(ctx context.Context, subjectID string) (*models.Alert, error)

	// ClaimAlert moves active -> investigating iff the alert is still
	// unclaimed. Returns the number of rows updated.
	ClaimAlert(ctx context.Context, alertID, operatorID string, claimedAt time.Time) (int64, error)

	// MarkAwaitingValidation moves active/investigating ->
	// awaiting_validation and records the evidence trail. Returns the
	// number of rows updated.
	MarkAwaitingValidation(ctx context.Context, alertID, evidenceRef, reason string) (int64, error)

	// ResolveWithValidation atomically consumes the termination token and
	// moves awaiting_validation -> resolved in a single transaction.
	ResolveWithValidation(ctx context.Context, alertID, tokenID string, validator models.ValidatorIdentity, resolvedAt time.Time) error

	// RejectTermination moves awaiting_validation -> active. Returns the
	// number of rows updated.
	RejectTermination(ctx context.Context, alertID string) (int64, error)

	// CloseAlert atomically inserts the incident report and moves the
	// alert to the terminal outcome in a single transaction. Returns the
	// number of alert rows updated.
	CloseAlert(ctx context.Context, alertID string, report *models.IncidentReport, resolvedAt time.Time) (int64, error)

	GetSubjectProfile(ctx context.Context, subjectID string) (*models.SubjectProfile, error)
}

// TokenRepo defines the interface for access token persistence
type TokenRepo interface {
	InsertToken(ctx context.Context, token *models.AccessToken) error
	GetLiveToken(ctx context.Context, alertID string, purpose models.TokenPurpose, now time.Time) (*models.AccessToken, error)
	GetTokenByCode(ctx context.Context, code string, purpose models.TokenPurpose) (*models.AccessToken, error)

	// RevokeLiveTokens revokes every unconsumed token of the given
	// purpose for the alert. Used on re-mint and on terminal transitions.
	RevokeLiveTokens(ctx context.Context, alertID string, purpose models.TokenPurpose, revokedAt time.Time) (int64, error)

	// DeleteExpired removes tokens whose expiry passed before the cutoff.
	// Consumed tokens are kept for audit.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
