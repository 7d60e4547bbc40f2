package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sentinela-app/sentinela/internal/pkg/constants"
	"github.com/sentinela-app/sentinela/internal/pkg/logger"
	"github.com/sentinela-app/sentinela/internal/pkg/models"
	nrpkg "github.com/sentinela-app/sentinela/internal/pkg/newrelic"
	"github.com/sentinela-app/sentinela/internal/utils"
	"github.com/sentinela-app/sentinela/services/location"
)

// PositionHandler handles HTTP requests for the position stream
type PositionHandler struct {
	locationUC location.LocationUC
}

// NewPositionHandler creates a new position HTTP handler
func NewPositionHandler(locationUC location.LocationUC) *PositionHandler {
	return &PositionHandler{
		locationUC: locationUC,
	}
}

// AppendPosition accepts a position sample from the subject's device
func (h *PositionHandler) AppendPosition(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Location.AppendPosition")

	alertID := c.Param("alertID")
	if alertID == "" {
		return utils.BadRequestResponse(c, "Alert ID is required")
	}

	var req models.AppendPositionRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	nrpkg.AddTransactionAttribute(txn, "alert.id", alertID)

	sample, err := h.locationUC.AppendPosition(c.Request().Context(), alertID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Position recorded", sample)
}

// LatestPosition returns the alert's most recent position
func (h *PositionHandler) LatestPosition(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Location.LatestPosition")

	alertID := c.Param("alertID")
	if alertID == "" {
		return utils.BadRequestResponse(c, "Alert ID is required")
	}

	position, err := h.locationUC.LatestPosition(c.Request().Context(), alertID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Latest position", position)
}

// PositionHistory returns the alert's samples within a time range.
// Defaults to the last 24 hours when no range is given.
func (h *PositionHandler) PositionHistory(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Location.PositionHistory")

	alertID := c.Param("alertID")
	if alertID == "" {
		return utils.BadRequestResponse(c, "Alert ID is required")
	}

	endTime := models.Now()
	startTime := endTime.Add(-24 * time.Hour)

	if v := c.QueryParam("start"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid start time: "+err.Error())
		}
		startTime = parsed
	}
	if v := c.QueryParam("end"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid end time: "+err.Error())
		}
		endTime = parsed
	}

	samples, err := h.locationUC.GetPositionHistory(c.Request().Context(), alertID, startTime, endTime)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Position history", samples)
}

// NearbyAlerts returns alerts whose latest position is within the
// requested radius of a point
func (h *PositionHandler) NearbyAlerts(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Location.NearbyAlerts")

	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude")
	}

	radiusKm := 5.0
	if v := c.QueryParam("radius_km"); v != "" {
		radiusKm, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid radius")
		}
	}

	position := &models.Position{Latitude: lat, Longitude: lng}
	nearby, err := h.locationUC.NearbyAlerts(c.Request().Context(), position, radiusKm)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby alerts", nearby)
}

// respondError maps use case errors to HTTP responses
func (h *PositionHandler) respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, location.ErrInvalidPosition):
		return utils.ReasonResponse(c, http.StatusBadRequest, constants.ReasonMissingRequiredField, "Position out of range")
	case errors.Is(err, location.ErrAlertNotFound):
		return utils.ReasonResponse(c, http.StatusNotFound, constants.ReasonNotFound, "Alert not found")
	case errors.Is(err, location.ErrNoPosition):
		return utils.ReasonResponse(c, http.StatusNotFound, constants.ReasonNotFound, "No position recorded for alert")
	default:
		logger.Error("Unhandled position operation error", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}
