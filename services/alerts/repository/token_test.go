package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sentinela-app/sentinela/internal/pkg/models"
	"github.com/sentinela-app/sentinela/services/alerts/repository"
)

func tokenRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "alert_id", "purpose", "code", "bound_identity",
		"issued_at", "expires_at", "consumed_at", "consumed_by", "revoked_at",
	})
}

func TestInsertToken_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTokenRepository(&models.Config{}, db)

	token := &models.AccessToken{
		ID:        uuid.NewString(),
		AlertID:   "alert-1",
		Purpose:   models.PurposeTermination,
		Code:      "KX7M2P",
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(45 * time.Minute),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO access_tokens")).
		WithArgs(token.ID, token.AlertID, token.Purpose, token.Code,
			token.BoundIdentity, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.InsertToken(context.Background(), token)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTokenByCode_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTokenRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE code = $1 AND purpose = $2")).
		WithArgs("KX7M2P", models.PurposeTermination).
		WillReturnRows(tokenRows().AddRow(
			"token-1", "alert-1", "termination", "KX7M2P", "",
			time.Now(), time.Now().Add(30*time.Minute), nil, "", nil))

	token, err := repo.GetTokenByCode(context.Background(), "KX7M2P", models.PurposeTermination)
	assert.NoError(t, err)
	assert.Equal(t, "alert-1", token.AlertID)
	assert.Nil(t, token.ConsumedAt)
}

func TestGetTokenByCode_UnknownReturnsNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTokenRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE code = $1 AND purpose = $2")).
		WithArgs("NOPE99", models.PurposeTermination).
		WillReturnError(sql.ErrNoRows)

	token, err := repo.GetTokenByCode(context.Background(), "NOPE99", models.PurposeTermination)
	assert.NoError(t, err)
	assert.Nil(t, token)
}

func TestGetLiveToken_FiltersDeadTokens(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTokenRepository(&models.Config{}, db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("consumed_at IS NULL AND revoked_at IS NULL AND expires_at > $3")).
		WithArgs("alert-1", models.PurposeDelegation, now).
		WillReturnError(sql.ErrNoRows)

	token, err := repo.GetLiveToken(context.Background(), "alert-1", models.PurposeDelegation, now)
	assert.NoError(t, err)
	assert.Nil(t, token)
}

func TestRevokeLiveTokens(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTokenRepository(&models.Config{}, db)

	revokedAt := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("SET revoked_at = $3")).
		WithArgs("alert-1", models.PurposeTermination, revokedAt).
		WillReturnResult(sqlmock.NewResult(0, 2))

	rows, err := repo.RevokeLiveTokens(context.Background(), "alert-1", models.PurposeTermination, revokedAt)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), rows)
}

func TestDeleteExpired_SparesConsumedTokens(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTokenRepository(&models.Config{}, db)

	cutoff := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM access_tokens")).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 5))

	deleted, err := repo.DeleteExpired(context.Background(), cutoff)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), deleted)
}
