package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sentinela-app/sentinela/internal/pkg/models"
)

// TokenRepo provides PostgreSQL persistence for access tokens
type TokenRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(cfg *models.Config, db *sqlx.DB) *TokenRepo {
	return &TokenRepo{
		cfg: cfg,
		db:  db,
	}
}

// InsertToken stores a freshly minted token
func (r *TokenRepo) InsertToken(ctx context.Context, token *models.AccessToken) error {
	query := `
		INSERT INTO access_tokens (
			id, alert_id, purpose, code, bound_identity, issued_at, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		token.ID,
		token.AlertID,
		token.Purpose,
		token.Code,
		token.BoundIdentity,
		token.IssuedAt,
		token.ExpiresAt,
	)
	return err
}

// GetLiveToken returns the alert's unconsumed, unrevoked, unexpired
// token of the given purpose, nil if none exists
func (r *TokenRepo) GetLiveToken(ctx context.Context, alertID string, purpose models.TokenPurpose, now time.Time) (*models.AccessToken, error) {
	query := `
		SELECT id, alert_id, purpose, code,
			COALESCE(bound_identity, '') AS bound_identity,
			issued_at, expires_at, consumed_at,
			COALESCE(consumed_by, '') AS consumed_by,
			revoked_at
		FROM access_tokens
		WHERE alert_id = $1 AND purpose = $2
			AND consumed_at IS NULL AND revoked_at IS NULL AND expires_at > $3
		ORDER BY issued_at DESC
		LIMIT 1
	`

	token := &models.AccessToken{}
	err := r.db.GetContext(ctx, token, query, alertID, purpose, now)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get live token: %w", err)
	}
	return token, nil
}

// GetTokenByCode returns the token matching the code and purpose, nil
// if absent. The caller decides which liveness failures to surface.
func (r *TokenRepo) GetTokenByCode(ctx context.Context, code string, purpose models.TokenPurpose) (*models.AccessToken, error) {
	query := `
		SELECT id, alert_id, purpose, code,
			COALESCE(bound_identity, '') AS bound_identity,
			issued_at, expires_at, consumed_at,
			COALESCE(consumed_by, '') AS consumed_by,
			revoked_at
		FROM access_tokens
		WHERE code = $1 AND purpose = $2
		ORDER BY issued_at DESC
		LIMIT 1
	`

	token := &models.AccessToken{}
	err := r.db.GetContext(ctx, token, query, code, purpose)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get token by code: %w", err)
	}
	return token, nil
}

// RevokeLiveTokens revokes every live token of the given purpose for
// the alert and returns how many were revoked
func (r *TokenRepo) RevokeLiveTokens(ctx context.Context, alertID string, purpose models.TokenPurpose, revokedAt time.Time) (int64, error) {
	query := `
		UPDATE access_tokens
		SET revoked_at = $3
		WHERE alert_id = $1 AND purpose = $2
			AND consumed_at IS NULL AND revoked_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, alertID, purpose, revokedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DeleteExpired removes expired tokens that were never consumed
func (r *TokenRepo) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM access_tokens
		WHERE expires_at <= $1 AND consumed_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
