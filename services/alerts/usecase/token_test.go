package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentinela-app/sentinela/internal/pkg/models"
	"github.com/sentinela-app/sentinela/services/alerts"
)

func TestIssueDelegationToken_Success(t *testing.T) {
	uc, mockRepo, mockTokens, _ := newTestUC(t)

	open := &models.Alert{ID: "alert-1", Status: models.AlertStatusInvestigating}
	mockRepo.EXPECT().GetAlert(gomock.Any(), "alert-1").Return(open, nil)
	mockTokens.EXPECT().InsertToken(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, token *models.AccessToken) error {
			assert.Equal(t, models.PurposeDelegation, token.Purpose)
			assert.Equal(t, "contact:maria-mae", token.BoundIdentity)
			assert.Len(t, token.Code, delegationTokenLength)
			// Default TTL applies when the request does not carry one.
			assert.WithinDuration(t, time.Now().Add(240*time.Minute), token.ExpiresAt, 5*time.Second)
			return nil
		})

	issued, err := uc.IssueDelegationToken(context.Background(), models.IssueTokenRequest{
		AlertID:       "alert-1",
		BoundIdentity: "contact:maria-mae",
	})

	require.NoError(t, err)
	assert.Equal(t, models.PurposeDelegation, issued.Purpose)
	assert.Len(t, issued.Code, delegationTokenLength)
}

func TestIssueDelegationToken_CustomTTL(t *testing.T) {
	uc, mockRepo, mockTokens, _ := newTestUC(t)

	open := &models.Alert{ID: "alert-1", Status: models.AlertStatusActive}
	mockRepo.EXPECT().GetAlert(gomock.Any(), "alert-1").Return(open, nil)
	mockTokens.EXPECT().InsertToken(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, token *models.AccessToken) error {
			assert.WithinDuration(t, time.Now().Add(30*time.Minute), token.ExpiresAt, 5*time.Second)
			return nil
		})

	_, err := uc.IssueDelegationToken(context.Background(), models.IssueTokenRequest{
		AlertID:    "alert-1",
		TTLMinutes: 30,
	})

	require.NoError(t, err)
}

func TestIssueDelegationToken_TerminalAlertRejected(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	resolved := &models.Alert{ID: "alert-1", Status: models.AlertStatusResolved}
	mockRepo.EXPECT().GetAlert(gomock.Any(), "alert-1").Return(resolved, nil)

	_, err := uc.IssueDelegationToken(context.Background(), models.IssueTokenRequest{AlertID: "alert-1"})

	assert.ErrorIs(t, err, alerts.ErrIllegalTransition)
}

func TestIssueDelegationToken_AlertNotFound(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	mockRepo.EXPECT().GetAlert(gomock.Any(), "alert-1").Return(nil, nil)

	_, err := uc.IssueDelegationToken(context.Background(), models.IssueTokenRequest{AlertID: "alert-1"})

	assert.ErrorIs(t, err, alerts.ErrAlertNotFound)
}

func TestResolveDelegationToken_Success(t *testing.T) {
	uc, mockRepo, mockTokens, _ := newTestUC(t)

	token := &models.AccessToken{
		ID:        "token-1",
		AlertID:   "alert-1",
		Purpose:   models.PurposeDelegation,
		Code:      "opaque-code",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	open := &models.Alert{ID: "alert-1", Status: models.AlertStatusInvestigating}

	mockTokens.EXPECT().GetTokenByCode(gomock.Any(), "opaque-code", models.PurposeDelegation).Return(token, nil)
	mockRepo.EXPECT().GetAlert(gomock.Any(), "alert-1").Return(open, nil)

	resolved, err := uc.ResolveDelegationToken(context.Background(), "opaque-code")

	require.NoError(t, err)
	assert.Equal(t, "alert-1", resolved.AlertID)
}

func TestResolveDelegationToken_MultiUse(t *testing.T) {
	uc, mockRepo, mockTokens, _ := newTestUC(t)

	token := &models.AccessToken{
		ID:        "token-1",
		AlertID:   "alert-1",
		Purpose:   models.PurposeDelegation,
		Code:      "opaque-code",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	open := &models.Alert{ID: "alert-1", Status: models.AlertStatusActive}

	mockTokens.EXPECT().GetTokenByCode(gomock.Any(), "opaque-code", models.PurposeDelegation).Return(token, nil).Times(2)
	mockRepo.EXPECT().GetAlert(gomock.Any(), "alert-1").Return(open, nil).Times(2)

	// Resolving never consumes the token.
	_, err := uc.ResolveDelegationToken(context.Background(), "opaque-code")
	require.NoError(t, err)
	_, err = uc.ResolveDelegationToken(context.Background(), "opaque-code")
	require.NoError(t, err)
}

func TestResolveDelegationToken_UnknownCode(t *testing.T) {
	uc, _, mockTokens, _ := newTestUC(t)

	mockTokens.EXPECT().GetTokenByCode(gomock.Any(), "nope", models.PurposeDelegation).Return(nil, nil)

	_, err := uc.ResolveDelegationToken(context.Background(), "nope")

	assert.ErrorIs(t, err, alerts.ErrTokenInvalid)
}

func TestResolveDelegationToken_ExpiredCollapsesToInvalid(t *testing.T) {
	uc, _, mockTokens, _ := newTestUC(t)

	token := &models.AccessToken{
		ID:        "token-1",
		AlertID:   "alert-1",
		Purpose:   models.PurposeDelegation,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	mockTokens.EXPECT().GetTokenByCode(gomock.Any(), "opaque-code", models.PurposeDelegation).Return(token, nil)

	_, err := uc.ResolveDelegationToken(context.Background(), "opaque-code")

	// An expired token reads the same as an unknown one.
	assert.ErrorIs(t, err, alerts.ErrTokenInvalid)
}

func TestResolveDelegationToken_RevokedCollapsesToInvalid(t *testing.T) {
	uc, _, mockTokens, _ := newTestUC(t)

	revokedAt := time.Now().Add(-time.Minute)
	token := &models.AccessToken{
		ID:        "token-1",
		AlertID:   "alert-1",
		Purpose:   models.PurposeDelegation,
		ExpiresAt: time.Now().Add(time.Hour),
		RevokedAt: &revokedAt,
	}
	mockTokens.EXPECT().GetTokenByCode(gomock.Any(), "opaque-code", models.PurposeDelegation).Return(token, nil)

	_, err := uc.ResolveDelegationToken(context.Background(), "opaque-code")

	assert.ErrorIs(t, err, alerts.ErrTokenInvalid)
}

func TestResolveDelegationToken_TerminalAlertCollapsesToInvalid(t *testing.T) {
	uc, mockRepo, mockTokens, _ := newTestUC(t)

	token := &models.AccessToken{
		ID:        "token-1",
		AlertID:   "alert-1",
		Purpose:   models.PurposeDelegation,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	resolved := &models.Alert{ID: "alert-1", Status: models.AlertStatusFalseAlarm}

	mockTokens.EXPECT().GetTokenByCode(gomock.Any(), "opaque-code", models.PurposeDelegation).Return(token, nil)
	mockRepo.EXPECT().GetAlert(gomock.Any(), "alert-1").Return(resolved, nil)

	_, err := uc.ResolveDelegationToken(context.Background(), "opaque-code")

	assert.ErrorIs(t, err, alerts.ErrTokenInvalid)
}

func TestSweepExpiredTokens(t *testing.T) {
	uc, _, mockTokens, _ := newTestUC(t)

	mockTokens.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(int64(3), nil)

	err := uc.SweepExpiredTokens(context.Background())

	assert.NoError(t, err)
}

func TestSweepExpiredTokens_RepoError(t *testing.T) {
	uc, _, mockTokens, _ := newTestUC(t)

	mockTokens.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))

	err := uc.SweepExpiredTokens(context.Background())

	assert.Error(t, err)
}
