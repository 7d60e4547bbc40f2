package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sentinela-app/sentinela/internal/pkg/constants"
	"github.com/sentinela-app/sentinela/internal/pkg/models"
	nrpkg "github.com/sentinela-app/sentinela/internal/pkg/newrelic"
	"github.com/sentinela-app/sentinela/internal/utils"
	"github.com/sentinela-app/sentinela/services/alerts"
)

// GetAlertSummary serves the internal alert + profile read used by the
// sharing service to assemble delegated views
func (h *AlertHandler) GetAlertSummary(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Alerts.Internal.GetAlertSummary")

	alertID := c.Param("alertID")
	if alertID == "" {
		return utils.BadRequestResponse(c, "Alert ID is required")
	}

	summary, err := h.alertUC.GetAlertSummary(c.Request().Context(), alertID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		if errors.Is(err, alerts.ErrProfileUnavailable) {
			return utils.ReasonResponse(c, http.StatusServiceUnavailable, constants.ReasonUpstreamUnavailable, "Subject profile unavailable")
		}
		return h.respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Alert summary retrieved", summary)
}

// IssueDelegationToken mints a delegation token on behalf of the
// sharing service
func (h *AlertHandler) IssueDelegationToken(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Alerts.Internal.IssueDelegationToken")

	var req models.IssueTokenRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if req.AlertID == "" {
		return utils.ReasonResponse(c, http.StatusBadRequest, constants.ReasonMissingRequiredField, "Alert ID is required")
	}

	issued, err := h.alertUC.IssueDelegationToken(c.Request().Context(), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Delegation token issued", issued)
}

// ResolveDelegationToken resolves a delegation token for the sharing
// service. All failures collapse to a single invalid response.
func (h *AlertHandler) ResolveDelegationToken(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Alerts.Internal.ResolveDelegationToken")

	code := c.QueryParam("code")
	if code == "" {
		return utils.UnprocessableResponse(c, constants.ReasonTokenInvalid, "invalid")
	}

	token, err := h.alertUC.ResolveDelegationToken(c.Request().Context(), code)
	if err != nil {
		if errors.Is(err, alerts.ErrTokenInvalid) {
			return utils.UnprocessableResponse(c, constants.ReasonTokenInvalid, "invalid")
		}
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Token resolved", token)
}
