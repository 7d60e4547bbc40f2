package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sentinela-app/sentinela/internal/pkg/logger"
	"github.com/sentinela-app/sentinela/internal/pkg/models"
	"github.com/sentinela-app/sentinela/internal/utils"
	"github.com/sentinela-app/sentinela/services/alerts"
)

// CreateAlert raises a new alert for the subject. If the subject already
// has an open alert the existing one is returned unchanged, so a device
// retrying the panic action never forks a second incident.
func (uc *alertUC) CreateAlert(ctx context.Context, subjectID string, req models.CreateAlertRequest) (*models.Alert, error) {
	if existing, err := uc.alertRepo.GetOpenAlertBySubject(ctx, subjectID); err != nil {
		return nil, fmt.Errorf("failed to check open alerts: %w", err)
	} else if existing != nil {
		logger.InfoCtx(ctx, "Subject already has an open alert, returning it",
			logger.String("subject_id", subjectID),
			logger.String("alert_id", existing.ID))
		return existing, nil
	}

	triggerKind := req.TriggerKind
	if triggerKind == "" {
		triggerKind = models.TriggerManual
	}

	// The geolocation source may fail entirely; creation must not block
	// on a position fix.
	position := models.Position{
		Latitude:  uc.cfg.Alerts.DefaultLatitude,
		Longitude: uc.cfg.Alerts.DefaultLongitude,
		Timestamp: models.Now(),
	}
	if req.Position != nil {
		position = *req.Position
	}

	alert := &models.Alert{
		ID:               uuid.NewString(),
		SubjectID:        subjectID,
		Status:           models.AlertStatusActive,
		TriggerKind:      triggerKind,
		InitialLatitude:  position.Latitude,
		InitialLongitude: position.Longitude,
		CreatedAt:        models.Now(),
	}

	if err := uc.alertRepo.CreateAlert(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}

	event := &models.AlertCreatedEvent{
		AlertID:     alert.ID,
		SubjectID:   alert.SubjectID,
		TriggerKind: alert.TriggerKind,
		Position:    position,
		CreatedAt:   alert.CreatedAt,
	}
	if err := uc.alertGW.PublishAlertCreated(ctx, event); err != nil {
		// The alert is committed; the stream will catch up on redelivery
		// paths but the failure still needs eyes.
		logger.ErrorCtx(ctx, "Failed to publish alert created event",
			logger.String("alert_id", alert.ID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Alert created",
		logger.String("alert_id", alert.ID),
		logger.String("subject_id", subjectID),
		logger.String("trigger_kind", string(triggerKind)))

	return alert, nil
}

// GetAlert returns a single alert by ID
func (uc *alertUC) GetAlert(ctx context.Context, alertID string) (*models.Alert, error) {
	alert, err := uc.alertRepo.GetAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, alerts.ErrAlertNotFound
	}
	return alert, nil
}

// ClaimAlert assigns the alert to a desk operator. Racing operators
// converge on a single winner: the loser gets the claimed alert back,
// carrying the winner's operator_id, never an error.
func (uc *alertUC) ClaimAlert(ctx context.Context, alertID, operatorID string) (*models.Alert, error) {
	claimedAt := models.Now()

	rows, err := uc.alertRepo.ClaimAlert(ctx, alertID, operatorID, claimedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to claim alert: %w", err)
	}

	alert, err := uc.alertRepo.GetAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, alerts.ErrAlertNotFound
	}

	if rows == 0 {
		// Lost the conditional update. An investigating alert means
		// some operator (possibly this one, retrying) holds the claim;
		// both callers observe the same winner.
		if alert.Status == models.AlertStatusInvestigating {
			return alert, nil
		}
		return nil, alerts.ErrIllegalTransition
	}

	uc.publishStatusEvent(ctx, alert, models.AlertStatusActive, models.AlertStatusInvestigating, operatorID)

	logger.InfoCtx(ctx, "Alert claimed",
		logger.String("alert_id", alertID),
		logger.String("operator_id", operatorID))

	return alert, nil
}

// RequestTermination starts the verified termination handshake. The
// validation code is minted and committed before the status flips to
// awaiting_validation, so a crash between the two steps never leaves
// the alert waiting on a code that does not exist.
func (uc *alertUC) RequestTermination(ctx context.Context, alertID, subjectID string, req models.TerminationRequest) (*models.IssuedToken, error) {
	evidenceRef := utils.SanitizeString(req.EvidenceRef)
	reason := utils.SanitizeString(req.Reason)
	if evidenceRef == "" || reason == "" {
		return nil, alerts.ErrMissingEvidence
	}

	alert, err := uc.alertRepo.GetAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, alerts.ErrAlertNotFound
	}
	if alert.SubjectID != subjectID {
		return nil, alerts.ErrNotAlertSubject
	}

	switch alert.Status {
	case models.AlertStatusActive, models.AlertStatusInvestigating:
		// proceed with the transition below
	case models.AlertStatusAwaitingValidation:
		// Re-request: revoke the outstanding code and mint a fresh one.
		return uc.remintTerminationCode(ctx, alert)
	default:
		return nil, alerts.ErrIllegalTransition
	}

	issued, err := uc.mintTerminationCode(ctx, alert.ID)
	if err != nil {
		return nil, err
	}

	rows, err := uc.alertRepo.MarkAwaitingValidation(ctx, alertID, evidenceRef, reason)
	if err != nil {
		return nil, fmt.Errorf("failed to mark alert awaiting validation: %w", err)
	}
	if rows == 0 {
		// Someone moved the alert under us; the minted code must not
		// survive the failed handshake.
		if _, revokeErr := uc.tokenRepo.RevokeLiveTokens(ctx, alertID, models.PurposeTermination, models.Now()); revokeErr != nil {
			logger.ErrorCtx(ctx, "Failed to revoke orphaned termination code",
				logger.String("alert_id", alertID),
				logger.Err(revokeErr))
		}
		return nil, alerts.ErrIllegalTransition
	}

	uc.publishStatusEvent(ctx, alert, alert.Status, models.AlertStatusAwaitingValidation, alert.OperatorID)

	logger.InfoCtx(ctx, "Termination requested, validation code issued",
		logger.String("alert_id", alertID),
		logger.String("subject_id", subjectID))

	return issued, nil
}

// ValidateTermination consumes the validation code and resolves the
// alert. Consumption and the status transition commit atomically.
func (uc *alertUC) ValidateTermination(ctx context.Context, alertID, operatorID string, req models.ValidateTerminationRequest) (*models.Alert, error) {
	if req.Validator.Rank == "" || req.Validator.Name == "" || req.Validator.BadgeID == "" {
		return nil, alerts.ErrMissingValidator
	}

	alert, err := uc.alertRepo.GetAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, alerts.ErrAlertNotFound
	}
	if alert.Status != models.AlertStatusAwaitingValidation {
		return nil, alerts.ErrIllegalTransition
	}

	code := utils.NormalizeCode(req.TokenInput)
	token, err := uc.tokenRepo.GetTokenByCode(ctx, code, models.PurposeTermination)
	if err != nil {
		return nil, err
	}
	if token == nil || token.AlertID != alertID {
		return nil, alerts.ErrTokenInvalid
	}
	if token.ConsumedAt != nil {
		return nil, alerts.ErrTokenConsumed
	}
	if token.RevokedAt != nil {
		return nil, alerts.ErrTokenInvalid
	}
	if !models.Now().Before(token.ExpiresAt) {
		return nil, alerts.ErrTokenExpired
	}

	resolvedAt := models.Now()
	if err := uc.alertRepo.ResolveWithValidation(ctx, alertID, token.ID, req.Validator, resolvedAt); err != nil {
		return nil, err
	}

	resolved, err := uc.alertRepo.GetAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}

	uc.publishStatusEvent(ctx, alert, models.AlertStatusAwaitingValidation, models.AlertStatusResolved, operatorID)

	logger.InfoCtx(ctx, "Termination validated, alert resolved",
		logger.String("alert_id", alertID),
		logger.String("validator_badge", req.Validator.BadgeID))

	return resolved, nil
}

// RejectTermination sends the alert back to active monitoring. The
// outstanding validation code dies immediately, whatever its TTL.
func (uc *alertUC) RejectTermination(ctx context.Context, alertID, operatorID string) (*models.Alert, error) {
	rows, err := uc.alertRepo.RejectTermination(ctx, alertID)
	if err != nil {
		return nil, fmt.Errorf("failed to reject termination: %w", err)
	}
	if rows == 0 {
		alert, err := uc.alertRepo.GetAlert(ctx, alertID)
		if err != nil {
			return nil, err
		}
		if alert == nil {
			return nil, alerts.ErrAlertNotFound
		}
		return nil, alerts.ErrIllegalTransition
	}

	if _, err := uc.tokenRepo.RevokeLiveTokens(ctx, alertID, models.PurposeTermination, models.Now()); err != nil {
		logger.ErrorCtx(ctx, "Failed to revoke validation code on rejection",
			logger.String("alert_id", alertID),
			logger.Err(err))
	}

	alert, err := uc.alertRepo.GetAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}

	uc.publishStatusEvent(ctx, alert, models.AlertStatusAwaitingValidation, models.AlertStatusActive, operatorID)

	logger.InfoCtx(ctx, "Termination rejected, alert back to active",
		logger.String("alert_id", alertID),
		logger.String("operator_id", operatorID))

	return alert, nil
}

// CloseAlert resolves the alert from the desk with a structured
// incident report. The report insert and the terminal transition
// commit atomically.
func (uc *alertUC) CloseAlert(ctx context.Context, alertID, operatorID string, req models.CloseAlertRequest) (*models.Alert, error) {
	if req.Outcome != models.AlertStatusResolved && req.Outcome != models.AlertStatusFalseAlarm {
		return nil, alerts.ErrInvalidOutcome
	}

	referenceID := utils.SanitizeString(req.ReferenceID)
	summary := utils.SanitizeString(req.Summary)
	if referenceID == "" || summary == "" {
		return nil, alerts.ErrMissingEvidence
	}

	alert, err := uc.alertRepo.GetAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, alerts.ErrAlertNotFound
	}

	report := &models.IncidentReport{
		ID:          uuid.NewString(),
		AlertID:     alertID,
		OperatorID:  operatorID,
		ReferenceID: referenceID,
		Summary:     summary,
		Outcome:     req.Outcome,
		CreatedAt:   models.Now(),
	}

	resolvedAt := models.Now()
	rows, err := uc.alertRepo.CloseAlert(ctx, alertID, report, resolvedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to close alert: %w", err)
	}
	if rows == 0 {
		return nil, alerts.ErrIllegalTransition
	}

	// Any outstanding codes or share links die with the alert.
	now := models.Now()
	for _, purpose := range []models.TokenPurpose{models.PurposeTermination, models.PurposeDelegation} {
		if _, err := uc.tokenRepo.RevokeLiveTokens(ctx, alertID, purpose, now); err != nil {
			logger.ErrorCtx(ctx, "Failed to revoke tokens on close",
				logger.String("alert_id", alertID),
				logger.String("purpose", string(purpose)),
				logger.Err(err))
		}
	}

	closed, err := uc.alertRepo.GetAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}

	uc.publishStatusEvent(ctx, alert, alert.Status, req.Outcome, operatorID)

	logger.InfoCtx(ctx, "Alert closed by desk",
		logger.String("alert_id", alertID),
		logger.String("operator_id", operatorID),
		logger.String("outcome", string(req.Outcome)))

	return closed, nil
}

// GetAlertSummary bundles the alert with its subject's display profile
// for internal consumers
func (uc *alertUC) GetAlertSummary(ctx context.Context, alertID string) (*models.AlertSummary, error) {
	alert, err := uc.alertRepo.GetAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, alerts.ErrAlertNotFound
	}

	profile, err := uc.alertRepo.GetSubjectProfile(ctx, alert.SubjectID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, alerts.ErrProfileUnavailable
	}

	return &models.AlertSummary{Alert: *alert, Profile: *profile}, nil
}

// publishStatusEvent emits a status transition event after the commit.
// Publish failures are logged: the database already holds the truth.
func (uc *alertUC) publishStatusEvent(ctx context.Context, alert *models.Alert, oldStatus, newStatus models.AlertStatus, operatorID string) {
	event := &models.AlertStatusEvent{
		AlertID:    alert.ID,
		SubjectID:  alert.SubjectID,
		OldStatus:  oldStatus,
		NewStatus:  newStatus,
		OperatorID: operatorID,
		OccurredAt: models.Now(),
	}
	if err := uc.alertGW.PublishAlertStatus(ctx, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish alert status event",
			logger.String("alert_id", alert.ID),
			logger.String("new_status", string(newStatus)),
			logger.Err(err))
	}
}
