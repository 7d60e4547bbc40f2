package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sentinela-app/sentinela/internal/pkg/models"
	"github.com/sentinela-app/sentinela/services/alerts"
)

// AlertRepo provides PostgreSQL persistence for alerts
type AlertRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAlertRepository creates a new alert repository
func NewAlertRepository(cfg *models.Config, db *sqlx.DB) *AlertRepo {
	return &AlertRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateAlert inserts a new alert row
func (r *AlertRepo) CreateAlert(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (
			id, subject_id, status, trigger_kind,
			initial_latitude, initial_longitude, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		alert.ID,
		alert.SubjectID,
		alert.Status,
		alert.TriggerKind,
		alert.InitialLatitude,
		alert.InitialLongitude,
		alert.CreatedAt,
	)
	return err
}

// GetAlert retrieves an alert by ID, nil if absent
func (r *AlertRepo) GetAlert(ctx context.Context, alertID string) (*models.Alert, error) {
	query := `
		SELECT id, subject_id, status, trigger_kind,
			COALESCE(operator_id, '') AS operator_id,
			initial_latitude, initial_longitude,
			COALESCE(evidence_ref, '') AS evidence_ref,
			COALESCE(termination_reason, '') AS termination_reason,
			created_at, claimed_at, resolved_at
		FROM alerts
		WHERE id = $1
	`

	alert := &models.Alert{}
	err := r.db.GetContext(ctx, alert, query, alertID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}
	return alert, nil
}

// GetOpenAlertBySubject returns the subject's non-terminal alert, nil
// if the subject has none. The partial unique index on
// (subject_id) WHERE status NOT IN ('resolved','false_alarm')
// guarantees at most one row.
func (r *AlertRepo) GetOpenAlertBySubject(ctx context.Context, subjectID string) (*models.Alert, error) {
	query := `
		SELECT id, subject_id, status, trigger_kind,
			COALESCE(operator_id, '') AS operator_id,
			initial_latitude, initial_longitude,
			COALESCE(evidence_ref, '') AS evidence_ref,
			COALESCE(termination_reason, '') AS termination_reason,
			created_at, claimed_at, resolved_at
		FROM alerts
		WHERE subject_id = $1 AND status NOT IN ('resolved', 'false_alarm')
		ORDER BY created_at DESC
		LIMIT 1
	`

	alert := &models.Alert{}
	err := r.db.GetContext(ctx, alert, query, subjectID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get open alert: %w", err)
	}
	return alert, nil
}

// ClaimAlert conditionally moves active -> investigating
func (r *AlertRepo) ClaimAlert(ctx context.Context, alertID, operatorID string, claimedAt time.Time) (int64, error) {
	query := `
		UPDATE alerts
		SET status = 'investigating', operator_id = $2, claimed_at = $3
		WHERE id = $1 AND status = 'active'
	`

	result, err := r.db.ExecContext(ctx, query, alertID, operatorID, claimedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// MarkAwaitingValidation conditionally moves active/investigating -> awaiting_validation
func (r *AlertRepo) MarkAwaitingValidation(ctx context.Context, alertID, evidenceRef, reason string) (int64, error) {
	query := `
		UPDATE alerts
		SET status = 'awaiting_validation', evidence_ref = $2, termination_reason = $3
		WHERE id = $1 AND status IN ('active', 'investigating')
	`

	result, err := r.db.ExecContext(ctx, query, alertID, evidenceRef, reason)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// ResolveWithValidation consumes the token, records the validator audit
// block and resolves the alert in one transaction. Any conditional
// update touching zero rows rolls the whole handshake back.
func (r *AlertRepo) ResolveWithValidation(ctx context.Context, alertID, tokenID string, validator models.ValidatorIdentity, resolvedAt time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	consumeQuery := `
		UPDATE access_tokens
		SET consumed_at = $2, consumed_by = $3
		WHERE id = $1 AND consumed_at IS NULL AND revoked_at IS NULL AND expires_at > $2
	`
	result, err := tx.ExecContext(ctx, consumeQuery, tokenID, resolvedAt, validator.BadgeID)
	if err != nil {
		return fmt.Errorf("failed to consume token: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		// A concurrent validator consumed the code first.
		return alerts.ErrTokenConsumed
	}

	resolveQuery := `
		UPDATE alerts
		SET status = 'resolved', resolved_at = $2
		WHERE id = $1 AND status = 'awaiting_validation'
	`
	result, err = tx.ExecContext(ctx, resolveQuery, alertID, resolvedAt)
	if err != nil {
		return fmt.Errorf("failed to resolve alert: %w", err)
	}
	rows, err = result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return alerts.ErrIllegalTransition
	}

	auditQuery := `
		INSERT INTO termination_validations (
			alert_id, token_id, rank, name, badge_id, phone, battalion, validated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.ExecContext(ctx, auditQuery,
		alertID, tokenID,
		validator.Rank, validator.Name, validator.BadgeID,
		validator.Phone, validator.Battalion, resolvedAt)
	if err != nil {
		return fmt.Errorf("failed to record validator identity: %w", err)
	}

	return tx.Commit()
}

// CloseAlert inserts the incident report and moves the alert to the
// terminal outcome in one transaction
func (r *AlertRepo) CloseAlert(ctx context.Context, alertID string, report *models.IncidentReport, resolvedAt time.Time) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	reportQuery := `
		INSERT INTO incident_reports (
			id, alert_id, operator_id, reference_id, summary, outcome, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = tx.ExecContext(ctx, reportQuery,
		report.ID, report.AlertID, report.OperatorID,
		report.ReferenceID, report.Summary, report.Outcome, report.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert incident report: %w", err)
	}

	closeQuery := `
		UPDATE alerts
		SET status = $2, resolved_at = $3
		WHERE id = $1 AND status IN ('active', 'investigating')
	`
	result, err := tx.ExecContext(ctx, closeQuery, alertID, report.Outcome, resolvedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to close alert: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		// No transition happened; the report insert must not survive.
		return 0, tx.Rollback()
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return rows, nil
}

// RejectTermination conditionally moves awaiting_validation back to
// active so the desk keeps monitoring
func (r *AlertRepo) RejectTermination(ctx context.Context, alertID string) (int64, error) {
	query := `
		UPDATE alerts
		SET status = 'active'
		WHERE id = $1 AND status = 'awaiting_validation'
	`

	result, err := r.db.ExecContext(ctx, query, alertID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// GetSubjectProfile reads the display profile row for a subject, nil if
// the read model has not been hydrated
func (r *AlertRepo) GetSubjectProfile(ctx context.Context, subjectID string) (*models.SubjectProfile, error) {
	query := `
		SELECT subject_id, display_name, vehicle_brand, vehicle_model, vehicle_plate, vehicle_color
		FROM subject_profiles
		WHERE subject_id = $1
	`

	profile := &models.SubjectProfile{}
	err := r.db.GetContext(ctx, profile, query, subjectID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subject profile: %w", err)
	}
	return profile, nil
}
