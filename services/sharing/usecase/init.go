package usecase

import (
	"github.com/sentinela-app/sentinela/internal/pkg/models"
	"github.com/sentinela-app/sentinela/services/sharing"
)

// sharingUC implements the sharing.SharingUC interface
type sharingUC struct {
	cfg        *models.Config
	alertsGW   sharing.AlertsGW
	locationGW sharing.LocationGW
	cache      sharing.ShareCache
}

// NewSharingUC creates a new sharing use case
func NewSharingUC(
	cfg *models.Config,
	alertsGW sharing.AlertsGW,
	locationGW sharing.LocationGW,
	cache sharing.ShareCache,
) sharing.SharingUC {
	return &sharingUC{
		cfg:        cfg,
		alertsGW:   alertsGW,
		locationGW: locationGW,
		cache:      cache,
	}
}
