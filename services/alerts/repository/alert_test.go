package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/sentinela-app/sentinela/internal/pkg/models"
	"github.com/sentinela-app/sentinela/services/alerts"
	"github.com/sentinela-app/sentinela/services/alerts/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func alertRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "subject_id", "status", "trigger_kind", "operator_id",
		"initial_latitude", "initial_longitude", "evidence_ref",
		"termination_reason", "created_at", "claimed_at", "resolved_at",
	})
}

func TestCreateAlert_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAlertRepository(&models.Config{}, db)

	alert := &models.Alert{
		ID:               uuid.NewString(),
		SubjectID:        uuid.NewString(),
		Status:           models.AlertStatusActive,
		TriggerKind:      models.TriggerManual,
		InitialLatitude:  -23.55,
		InitialLongitude: -46.63,
		CreatedAt:        time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO alerts")).
		WithArgs(alert.ID, alert.SubjectID, alert.Status, alert.TriggerKind,
			alert.InitialLatitude, alert.InitialLongitude, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateAlert(context.Background(), alert)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAlert_NotFoundReturnsNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAlertRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, subject_id, status")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	alert, err := repo.GetAlert(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, alert)
}

func TestGetAlert_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAlertRepository(&models.Config{}, db)

	alertID := uuid.NewString()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, subject_id, status")).
		WithArgs(alertID).
		WillReturnRows(alertRows().AddRow(
			alertID, "subject-1", "investigating", "manual", "op-1",
			-23.55, -46.63, "", "", time.Now(), time.Now(), nil))

	alert, err := repo.GetAlert(context.Background(), alertID)
	assert.NoError(t, err)
	assert.Equal(t, models.AlertStatusInvestigating, alert.Status)
	assert.Equal(t, "op-1", alert.OperatorID)
}

func TestGetOpenAlertBySubject_NoneOpen(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAlertRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("status NOT IN ('resolved', 'false_alarm')")).
		WithArgs("subject-1").
		WillReturnError(sql.ErrNoRows)

	alert, err := repo.GetOpenAlertBySubject(context.Background(), "subject-1")
	assert.NoError(t, err)
	assert.Nil(t, alert)
}

func TestClaimAlert_Won(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAlertRepository(&models.Config{}, db)

	claimedAt := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE alerts")).
		WithArgs("alert-1", "op-1", claimedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.ClaimAlert(context.Background(), "alert-1", "op-1", claimedAt)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

func TestClaimAlert_LostRace(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAlertRepository(&models.Config{}, db)

	claimedAt := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE alerts")).
		WithArgs("alert-1", "op-2", claimedAt).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := repo.ClaimAlert(context.Background(), "alert-1", "op-2", claimedAt)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func TestMarkAwaitingValidation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAlertRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("SET status = 'awaiting_validation'")).
		WithArgs("alert-1", "BO-2024-123", "left the area").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.MarkAwaitingValidation(context.Background(), "alert-1", "BO-2024-123", "left the area")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

func TestResolveWithValidation_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAlertRepository(&models.Config{}, db)

	validator := models.ValidatorIdentity{Rank: "Sergeant", Name: "A. Silva", BadgeID: "BD-4411"}
	resolvedAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE access_tokens")).
		WithArgs("token-1", resolvedAt, "BD-4411").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SET status = 'resolved'")).
		WithArgs("alert-1", resolvedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO termination_validations")).
		WithArgs("alert-1", "token-1", validator.Rank, validator.Name, validator.BadgeID,
			validator.Phone, validator.Battalion, resolvedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.ResolveWithValidation(context.Background(), "alert-1", "token-1", validator, resolvedAt)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveWithValidation_TokenAlreadyConsumedRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAlertRepository(&models.Config{}, db)

	resolvedAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE access_tokens")).
		WithArgs("token-1", resolvedAt, "BD-4411").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.ResolveWithValidation(context.Background(), "alert-1", "token-1",
		models.ValidatorIdentity{BadgeID: "BD-4411"}, resolvedAt)
	assert.ErrorIs(t, err, alerts.ErrTokenConsumed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveWithValidation_AlertMovedRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAlertRepository(&models.Config{}, db)

	resolvedAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE access_tokens")).
		WithArgs("token-1", resolvedAt, "BD-4411").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SET status = 'resolved'")).
		WithArgs("alert-1", resolvedAt).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.ResolveWithValidation(context.Background(), "alert-1", "token-1",
		models.ValidatorIdentity{BadgeID: "BD-4411"}, resolvedAt)
	assert.ErrorIs(t, err, alerts.ErrIllegalTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRejectTermination(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAlertRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("SET status = 'active'")).
		WithArgs("alert-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.RejectTermination(context.Background(), "alert-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

func TestCloseAlert_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAlertRepository(&models.Config{}, db)

	report := &models.IncidentReport{
		ID:          uuid.NewString(),
		AlertID:     "alert-1",
		OperatorID:  "op-1",
		ReferenceID: "REF-9",
		Summary:     "confirmed safe by phone",
		Outcome:     models.AlertStatusFalseAlarm,
		CreatedAt:   time.Now(),
	}
	resolvedAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO incident_reports")).
		WithArgs(report.ID, report.AlertID, report.OperatorID,
			report.ReferenceID, report.Summary, report.Outcome, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE alerts")).
		WithArgs("alert-1", report.Outcome, resolvedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rows, err := repo.CloseAlert(context.Background(), "alert-1", report, resolvedAt)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseAlert_TerminalAlertDiscardsReport(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAlertRepository(&models.Config{}, db)

	report := &models.IncidentReport{
		ID:      uuid.NewString(),
		AlertID: "alert-1",
		Outcome: models.AlertStatusResolved,
	}
	resolvedAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO incident_reports")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE alerts")).
		WithArgs("alert-1", report.Outcome, resolvedAt).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	rows, err := repo.CloseAlert(context.Background(), "alert-1", report, resolvedAt)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSubjectProfile_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAlertRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM subject_profiles")).
		WithArgs("subject-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"subject_id", "display_name", "vehicle_brand", "vehicle_model", "vehicle_plate", "vehicle_color",
		}).AddRow("subject-1", "Maria", "Honda", "Biz", "ABC1D23", "red"))

	profile, err := repo.GetSubjectProfile(context.Background(), "subject-1")
	assert.NoError(t, err)
	assert.Equal(t, "Maria", profile.DisplayName)
	assert.Equal(t, "ABC1D23", profile.VehiclePlate)
}

func TestGetSubjectProfile_MissingReturnsNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAlertRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM subject_profiles")).
		WithArgs("subject-2").
		WillReturnError(sql.ErrNoRows)

	profile, err := repo.GetSubjectProfile(context.Background(), "subject-2")
	assert.NoError(t, err)
	assert.Nil(t, profile)
}
