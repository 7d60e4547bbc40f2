package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/sentinela-app/sentinela/internal/pkg/middleware"
	"github.com/sentinela-app/sentinela/internal/pkg/models"
	natspkg "github.com/sentinela-app/sentinela/internal/pkg/nats"
	"github.com/sentinela-app/sentinela/services/location"
	httpHandler "github.com/sentinela-app/sentinela/services/location/handler/http"
	natsHandler "github.com/sentinela-app/sentinela/services/location/handler/nats"
)

// Handler combines all handlers for the location service
type Handler struct {
	positionHTTP *httpHandler.PositionHandler
	locationNATS *natsHandler.LocationHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	locationUC location.LocationUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
	nrApp *newrelic.Application,
) *Handler {
	return &Handler{
		positionHTTP: httpHandler.NewPositionHandler(locationUC),
		locationNATS: natsHandler.NewLocationHandler(natsClient, locationUC, nrApp),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	alertGroup := e.Group("/alerts", middleware.JWTAuthMiddleware(h.cfg.JWT))

	// Subject device pushes samples
	alertGroup.POST("/:alertID/position", h.positionHTTP.AppendPosition, middleware.RequireRole("subject"))

	// Desk reads
	alertGroup.GET("/:alertID/position/latest", h.positionHTTP.LatestPosition, middleware.RequireRole("operator", "supervisor"))
	alertGroup.GET("/:alertID/position/history", h.positionHTTP.PositionHistory, middleware.RequireRole("operator", "supervisor"))
	alertGroup.GET("/nearby", h.positionHTTP.NearbyAlerts, middleware.RequireRole("operator", "supervisor"))

	// Internal routes for service-to-service communication
	internal := e.Group("/internal", middleware.ValidateAPIKey("sharing-service", "alerts-service"))
	internal.GET("/alerts/:alertID/position/latest", h.positionHTTP.LatestPosition)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers(ctx context.Context) error {
	return h.locationNATS.InitNATSConsumers(ctx)
}

// Stop stops background consumers
func (h *Handler) Stop() {
	h.locationNATS.Stop()
}
