package usecase

import (
	"github.com/sentinela-app/sentinela/internal/pkg/models"
	"github.com/sentinela-app/sentinela/services/location"
)

// locationUC implements the location.LocationUC interface
type locationUC struct {
	cfg          *models.Config
	positionRepo location.PositionRepo
	cache        location.PositionCache
	locationGW   location.LocationGW
}

// NewLocationUC creates a new location use case
func NewLocationUC(
	cfg *models.Config,
	positionRepo location.PositionRepo,
	cache location.PositionCache,
	locationGW location.LocationGW,
) location.LocationUC {
	return &locationUC{
		cfg:          cfg,
		positionRepo: positionRepo,
		cache:        cache,
		locationGW:   locationGW,
	}
}
