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
	"github.com/sentinela-app/sentinela/services/sharing"
)

// ShareHandler handles HTTP requests for delegated alert access
type ShareHandler struct {
	sharingUC sharing.SharingUC
}

// NewShareHandler creates a new share HTTP handler
func NewShareHandler(sharingUC sharing.SharingUC) *ShareHandler {
	return &ShareHandler{
		sharingUC: sharingUC,
	}
}

// ShareAlert mints a delegation token for an external viewer
func (h *ShareHandler) ShareAlert(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Sharing.ShareAlert")

	operatorID := ""
	if uid := c.Get("user_id"); uid != nil {
		operatorID = fmt.Sprintf("%v", uid)
	}
	if operatorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ShareRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	share, err := h.sharingUC.ShareAlert(c.Request().Context(), operatorID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Share created", share)
}

// ResolveShare serves the public tracking view behind a delegation
// token. The endpoint is unauthenticated; rate limiting and the
// uniform invalid response are its only defenses, which is why both
// live here and not in the use case caller's hands.
func (h *ShareHandler) ResolveShare(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Sharing.ResolveShare")

	token := c.Param("token")

	view, err := h.sharingUC.ResolveShare(c.Request().Context(), token)
	if err != nil {
		if !errors.Is(err, sharing.ErrShareInvalid) {
			nrpkg.NoticeTransactionError(txn, err)
		}
		return h.respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Share resolved", view)
}

// respondError maps use case errors to HTTP responses
func (h *ShareHandler) respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, sharing.ErrShareInvalid):
		// One response for every token-side failure.
		return utils.UnprocessableResponse(c, constants.ReasonTokenInvalid, "invalid")
	case errors.Is(err, sharing.ErrMissingViewer), errors.Is(err, sharing.ErrMissingAlert):
		return utils.ReasonResponse(c, http.StatusBadRequest, constants.ReasonMissingRequiredField, err.Error())
	case errors.Is(err, sharing.ErrUpstreamUnavailable):
		return utils.ReasonResponse(c, http.StatusServiceUnavailable, constants.ReasonUpstreamUnavailable, "Upstream service unavailable")
	default:
		logger.Error("Unhandled share operation error", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}
