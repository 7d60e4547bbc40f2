package usecase

import (
	"github.com/sentinela-app/sentinela/internal/pkg/models"
	"github.com/sentinela-app/sentinela/services/alerts"
)

// alertUC implements the alerts.AlertUC interface
type alertUC struct {
	cfg       *models.Config
	alertRepo alerts.AlertRepo
	tokenRepo alerts.TokenRepo
	alertGW   alerts.AlertGW
}

// NewAlertUC creates a new alert use case
func NewAlertUC(
	cfg *models.Config,
	alertRepo alerts.AlertRepo,
	tokenRepo alerts.TokenRepo,
	alertGW alerts.AlertGW,
) alerts.AlertUC {
	return &alertUC{
		cfg:       cfg,
		alertRepo: alertRepo,
		tokenRepo: tokenRepo,
		alertGW:   alertGW,
	}
}
