package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sentinela-app/sentinela/internal/pkg/constants"
	"github.com/sentinela-app/sentinela/internal/pkg/logger"
	"github.com/sentinela-app/sentinela/internal/pkg/models"
	nrpkg "github.com/sentinela-app/sentinela/internal/pkg/newrelic"
	"github.com/sentinela-app/sentinela/internal/utils"
	"github.com/sentinela-app/sentinela/services/alerts"
)

// AlertHandler handles HTTP requests for alert lifecycle operations
type AlertHandler struct {
	alertUC alerts.AlertUC
}

// NewAlertHandler creates a new alert HTTP handler
func NewAlertHandler(alertUC alerts.AlertUC) *AlertHandler {
	return &AlertHandler{
		alertUC: alertUC,
	}
}

// userIDFromContext returns the authenticated principal's ID as a string
func userIDFromContext(c echo.Context) string {
	if uid := c.Get("user_id"); uid != nil {
		return fmt.Sprintf("%v", uid)
	}
	return ""
}

// CreateAlert handles the subject-side panic trigger
func (h *AlertHandler) CreateAlert(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Alerts.CreateAlert")

	subjectID := userIDFromContext(c)
	if subjectID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateAlertRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	alert, err := h.alertUC.CreateAlert(c.Request().Context(), subjectID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.respondError(c, err)
	}

	nrpkg.AddTransactionAttribute(txn, "alert.id", alert.ID)

	return utils.SuccessResponse(c, http.StatusCreated, "Alert created", alert)
}

// GetAlert returns a single alert
func (h *AlertHandler) GetAlert(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Alerts.GetAlert")

	alertID := c.Param("alertID")
	if alertID == "" {
		return utils.BadRequestResponse(c, "Alert ID is required")
	}

	alert, err := h.alertUC.GetAlert(c.Request().Context(), alertID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Alert retrieved", alert)
}

// ClaimAlert assigns the alert to the calling desk operator
func (h *AlertHandler) ClaimAlert(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Alerts.ClaimAlert")

	alertID := c.Param("alertID")
	if alertID == "" {
		return utils.BadRequestResponse(c, "Alert ID is required")
	}

	operatorID := userIDFromContext(c)
	if operatorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	nrpkg.AddTransactionAttribute(txn, "alert.id", alertID)
	nrpkg.AddTransactionAttribute(txn, "operator.id", operatorID)

	alert, err := h.alertUC.ClaimAlert(c.Request().Context(), alertID, operatorID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Alert claimed", alert)
}

// RequestTermination starts the verified termination handshake
func (h *AlertHandler) RequestTermination(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Alerts.RequestTermination")

	alertID := c.Param("alertID")
	if alertID == "" {
		return utils.BadRequestResponse(c, "Alert ID is required")
	}

	subjectID := userIDFromContext(c)
	if subjectID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.TerminationRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	issued, err := h.alertUC.RequestTermination(c.Request().Context(), alertID, subjectID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.respondError(c, err)
	}

	logger.Info("Termination handshake started",
		logger.String("alert_id", alertID))

	return utils.SuccessResponse(c, http.StatusOK, "Validation code issued", issued)
}

// ValidateTermination consumes the validation code and resolves the alert
func (h *AlertHandler) ValidateTermination(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Alerts.ValidateTermination")

	alertID := c.Param("alertID")
	if alertID == "" {
		return utils.BadRequestResponse(c, "Alert ID is required")
	}

	operatorID := userIDFromContext(c)
	if operatorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ValidateTerminationRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	alert, err := h.alertUC.ValidateTermination(c.Request().Context(), alertID, operatorID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Termination validated", alert)
}

// RejectTermination sends an awaiting_validation alert back to active
// and kills the outstanding validation code
func (h *AlertHandler) RejectTermination(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Alerts.RejectTermination")

	alertID := c.Param("alertID")
	if alertID == "" {
		return utils.BadRequestResponse(c, "Alert ID is required")
	}

	operatorID := userIDFromContext(c)
	if operatorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	alert, err := h.alertUC.RejectTermination(c.Request().Context(), alertID, operatorID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Termination rejected", alert)
}

// CloseAlert resolves the alert from the desk with an incident report
func (h *AlertHandler) CloseAlert(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Alerts.CloseAlert")

	alertID := c.Param("alertID")
	if alertID == "" {
		return utils.BadRequestResponse(c, "Alert ID is required")
	}

	operatorID := userIDFromContext(c)
	if operatorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CloseAlertRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	alert, err := h.alertUC.CloseAlert(c.Request().Context(), alertID, operatorID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Alert closed", alert)
}

// respondError maps use case errors to HTTP responses with stable
// reason codes
func (h *AlertHandler) respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, alerts.ErrAlertNotFound):
		return utils.ReasonResponse(c, http.StatusNotFound, constants.ReasonNotFound, "Alert not found")
	case errors.Is(err, alerts.ErrIllegalTransition):
		return utils.ConflictResponse(c, constants.ReasonIllegalTransition, "Status transition not allowed")
	case errors.Is(err, alerts.ErrTokenInvalid):
		return utils.UnprocessableResponse(c, constants.ReasonTokenInvalid, "Validation code not accepted")
	case errors.Is(err, alerts.ErrTokenExpired):
		return utils.UnprocessableResponse(c, constants.ReasonTokenExpired, "Validation code expired")
	case errors.Is(err, alerts.ErrTokenConsumed):
		return utils.UnprocessableResponse(c, constants.ReasonTokenConsumed, "Validation code already used")
	case errors.Is(err, alerts.ErrMissingEvidence),
		errors.Is(err, alerts.ErrMissingValidator),
		errors.Is(err, alerts.ErrInvalidOutcome):
		return utils.ReasonResponse(c, http.StatusBadRequest, constants.ReasonMissingRequiredField, err.Error())
	case errors.Is(err, alerts.ErrNotAlertSubject):
		return utils.ForbiddenResponse(c, "")
	default:
		logger.Error("Unhandled alert operation error", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}
