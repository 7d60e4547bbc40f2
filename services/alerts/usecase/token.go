package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sentinela-app/sentinela/internal/pkg/logger"
	"github.com/sentinela-app/sentinela/internal/pkg/models"
	"github.com/sentinela-app/sentinela/internal/utils"
	"github.com/sentinela-app/sentinela/services/alerts"
)

const (
	terminationCodeLength = 6
	delegationTokenLength = 48
)

// mintTerminationCode creates and persists a fresh validation code for
// the alert
func (uc *alertUC) mintTerminationCode(ctx context.Context, alertID string) (*models.IssuedToken, error) {
	code, err := utils.GenerateValidationCode(terminationCodeLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate validation code: %w", err)
	}

	now := models.Now()
	token := &models.AccessToken{
		ID:        uuid.NewString(),
		AlertID:   alertID,
		Purpose:   models.PurposeTermination,
		Code:      code,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Duration(uc.cfg.Tokens.TerminationTTLMinutes) * time.Minute),
	}

	if err := uc.tokenRepo.InsertToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to persist validation code: %w", err)
	}

	return &models.IssuedToken{
		AlertID:   alertID,
		Purpose:   models.PurposeTermination,
		Code:      code,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

// remintTerminationCode revokes the outstanding code and issues a new
// one without touching the alert status
func (uc *alertUC) remintTerminationCode(ctx context.Context, alert *models.Alert) (*models.IssuedToken, error) {
	if _, err := uc.tokenRepo.RevokeLiveTokens(ctx, alert.ID, models.PurposeTermination, models.Now()); err != nil {
		return nil, fmt.Errorf("failed to revoke previous validation code: %w", err)
	}

	issued, err := uc.mintTerminationCode(ctx, alert.ID)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Termination code re-minted",
		logger.String("alert_id", alert.ID))

	return issued, nil
}

// IssueDelegationToken mints a long opaque capability scoped to one
// alert for an external viewer. Unlike validation codes, delegation
// tokens are multi-use until expiry or revocation.
func (uc *alertUC) IssueDelegationToken(ctx context.Context, req models.IssueTokenRequest) (*models.IssuedToken, error) {
	alert, err := uc.alertRepo.GetAlert(ctx, req.AlertID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, alerts.ErrAlertNotFound
	}
	if alert.Status.IsTerminal() {
		return nil, alerts.ErrIllegalTransition
	}

	code, err := utils.GenerateRandomString(delegationTokenLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate delegation token: %w", err)
	}

	ttlMinutes := req.TTLMinutes
	if ttlMinutes <= 0 {
		ttlMinutes = uc.cfg.Tokens.DelegationTTLMinutes
	}

	now := models.Now()
	token := &models.AccessToken{
		ID:            uuid.NewString(),
		AlertID:       req.AlertID,
		Purpose:       models.PurposeDelegation,
		Code:          code,
		BoundIdentity: req.BoundIdentity,
		IssuedAt:      now,
		ExpiresAt:     now.Add(time.Duration(ttlMinutes) * time.Minute),
	}

	if err := uc.tokenRepo.InsertToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to persist delegation token: %w", err)
	}

	logger.InfoCtx(ctx, "Delegation token issued",
		logger.String("alert_id", req.AlertID),
		logger.String("bound_identity", req.BoundIdentity))

	return &models.IssuedToken{
		AlertID:   req.AlertID,
		Purpose:   models.PurposeDelegation,
		Code:      code,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

// ResolveDelegationToken returns the token behind a tracking URL.
// Every failure mode collapses to ErrTokenInvalid: an outside caller
// probing codes learns nothing about why one was rejected.
func (uc *alertUC) ResolveDelegationToken(ctx context.Context, code string) (*models.AccessToken, error) {
	token, err := uc.tokenRepo.GetTokenByCode(ctx, code, models.PurposeDelegation)
	if err != nil {
		return nil, err
	}
	if token == nil || !token.Live(models.Now()) {
		return nil, alerts.ErrTokenInvalid
	}

	alert, err := uc.alertRepo.GetAlert(ctx, token.AlertID)
	if err != nil {
		return nil, err
	}
	if alert == nil || alert.Status.IsTerminal() {
		return nil, alerts.ErrTokenInvalid
	}

	return token, nil
}

// SweepExpiredTokens removes expired, never-consumed tokens. Runs on a
// cron schedule; consumed tokens survive as part of the audit trail.
func (uc *alertUC) SweepExpiredTokens(ctx context.Context) error {
	deleted, err := uc.tokenRepo.DeleteExpired(ctx, models.Now())
	if err != nil {
		return fmt.Errorf("failed to sweep expired tokens: %w", err)
	}

	if deleted > 0 {
		logger.Info("Swept expired tokens", logger.Int64("deleted", deleted))
	}
	return nil
}
