package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/sentinela-app/sentinela/internal/pkg/middleware"
	"github.com/sentinela-app/sentinela/internal/pkg/models"
	natspkg "github.com/sentinela-app/sentinela/internal/pkg/nats"
	wspkg "github.com/sentinela-app/sentinela/internal/pkg/websocket"
	"github.com/sentinela-app/sentinela/services/alerts"
	httpHandler "github.com/sentinela-app/sentinela/services/alerts/handler/http"
	natsHandler "github.com/sentinela-app/sentinela/services/alerts/handler/nats"
	wsHandler "github.com/sentinela-app/sentinela/services/alerts/handler/websocket"
)

// Handler combines all handlers for the alerts service
type Handler struct {
	alertHTTP *httpHandler.AlertHandler
	deskWS    *wsHandler.DeskHandler
	alertNATS *natsHandler.AlertsHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	alertUC alerts.AlertUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
	nrApp *newrelic.Application,
) *Handler {
	wsManager := wspkg.NewManager(cfg.JWT)
	deskWS := wsHandler.NewDeskHandler(wsManager)

	return &Handler{
		alertHTTP: httpHandler.NewAlertHandler(alertUC),
		deskWS:    deskWS,
		alertNATS: natsHandler.NewAlertsHandler(natsClient, deskWS, nrApp),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP and WebSocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	alertGroup := e.Group("/alerts", middleware.JWTAuthMiddleware(h.cfg.JWT))

	// Subject-side routes
	alertGroup.POST("", h.alertHTTP.CreateAlert, middleware.RequireRole("subject"))
	alertGroup.POST("/:alertID/termination", h.alertHTTP.RequestTermination, middleware.RequireRole("subject"))

	// Desk-side routes
	alertGroup.GET("/:alertID", h.alertHTTP.GetAlert, middleware.RequireRole("operator", "supervisor"))
	alertGroup.POST("/:alertID/claim", h.alertHTTP.ClaimAlert, middleware.RequireRole("operator", "supervisor"))
	alertGroup.POST("/:alertID/validation", h.alertHTTP.ValidateTermination, middleware.RequireRole("operator", "supervisor"))
	alertGroup.POST("/:alertID/rejection", h.alertHTTP.RejectTermination, middleware.RequireRole("operator", "supervisor"))
	alertGroup.POST("/:alertID/close", h.alertHTTP.CloseAlert, middleware.RequireRole("operator", "supervisor"))

	// Desk WebSocket endpoint (authenticates inside the upgrade)
	e.GET("/ws/desk", h.deskWS.HandleConnection)

	// Internal routes for service-to-service communication
	internal := e.Group("/internal", middleware.ValidateAPIKey("sharing-service", "location-service"))
	internal.GET("/alerts/:alertID/summary", h.alertHTTP.GetAlertSummary)
	internal.POST("/tokens", h.alertHTTP.IssueDelegationToken)
	internal.GET("/tokens/resolve", h.alertHTTP.ResolveDelegationToken)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers(ctx context.Context) error {
	return h.alertNATS.InitNATSConsumers(ctx)
}

// Stop stops background consumers
func (h *Handler) Stop() {
	h.alertNATS.Stop()
}
