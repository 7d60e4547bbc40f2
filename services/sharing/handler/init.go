package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sentinela-app/sentinela/internal/pkg/database"
	"github.com/sentinela-app/sentinela/internal/pkg/middleware"
	"github.com/sentinela-app/sentinela/internal/pkg/models"
	"github.com/sentinela-app/sentinela/services/sharing"
	httpHandler "github.com/sentinela-app/sentinela/services/sharing/handler/http"
)

// Handler combines all handlers for the sharing service
type Handler struct {
	shareHTTP   *httpHandler.ShareHandler
	redisClient *database.RedisClient
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	sharingUC sharing.SharingUC,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		shareHTTP:   httpHandler.NewShareHandler(sharingUC),
		redisClient: redisClient,
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Desk-side share creation
	shareGroup := e.Group("/shares", middleware.JWTAuthMiddleware(h.cfg.JWT))
	shareGroup.POST("", h.shareHTTP.ShareAlert, middleware.RequireRole("operator", "supervisor"))

	// Public resolve. Shared views poll this every few seconds, so the
	// limit leaves headroom for one legitimate viewer while blunting
	// enumeration.
	resolveLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: h.redisClient.Client,
		Key:         "ratelimit:shares",
		Limit:       30,
		Period:      time.Minute,
	})
	e.GET("/shares/:token", h.shareHTTP.ResolveShare, resolveLimiter)
}
