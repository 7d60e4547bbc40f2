package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sentinela-app/sentinela/internal/pkg/logger"
	"github.com/sentinela-app/sentinela/internal/pkg/models"
	"github.com/sentinela-app/sentinela/internal/utils"
	"github.com/sentinela-app/sentinela/services/sharing"
)

// ShareAlert mints a delegation token bound to a named viewer by
// calling the alerts service's internal API
func (uc *sharingUC) ShareAlert(ctx context.Context, operatorID string, req models.ShareRequest) (*models.ShareResponse, error) {
	viewerName := utils.SanitizeString(req.ViewerName)
	if viewerName == "" {
		return nil, sharing.ErrMissingViewer
	}
	if req.AlertID == "" {
		return nil, sharing.ErrMissingAlert
	}

	issued, err := uc.alertsGW.IssueDelegationToken(ctx, models.IssueTokenRequest{
		AlertID:       req.AlertID,
		Purpose:       models.PurposeDelegation,
		TTLMinutes:    req.TTLMinutes,
		BoundIdentity: viewerName,
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to mint delegation token",
			logger.String("alert_id", req.AlertID),
			logger.Err(err))
		return nil, sharing.ErrUpstreamUnavailable
	}

	logger.InfoCtx(ctx, "Alert shared",
		logger.String("alert_id", req.AlertID),
		logger.String("operator_id", operatorID),
		logger.String("viewer", viewerName))

	return &models.ShareResponse{
		Token:      issued.Code,
		AlertID:    issued.AlertID,
		ViewerName: viewerName,
		ExpiresAt:  issued.ExpiresAt,
	}, nil
}

// ResolveShare exchanges a delegation token for the read-only view.
// Token-side failures all collapse to ErrShareInvalid so a caller
// probing codes learns nothing. The view never carries contact details
// or an address, and the plate is masked.
func (uc *sharingUC) ResolveShare(ctx context.Context, tokenInput string) (*models.DelegationView, error) {
	code := strings.TrimSpace(tokenInput)
	if code == "" {
		return nil, sharing.ErrShareInvalid
	}

	token, err := uc.alertsGW.ResolveDelegationToken(ctx, code)
	if err != nil {
		return nil, sharing.ErrShareInvalid
	}

	summary, err := uc.alertsGW.GetAlertSummary(ctx, token.AlertID)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to load alert summary for share",
			logger.String("alert_id", token.AlertID),
			logger.Err(err))
		return nil, sharing.ErrUpstreamUnavailable
	}

	view := &models.DelegationView{
		AlertID:     summary.Alert.ID,
		SubjectName: summary.Profile.DisplayName,
		Vehicle:     vehicleDescriptor(summary.Profile),
		Status:      summary.Alert.Status,
		LastUpdate:  summary.Alert.CreatedAt,
	}

	// Position is best-effort: a share without a fix is still a share.
	if position, err := uc.locationGW.LatestPosition(ctx, token.AlertID); err == nil {
		view.Position = position
		view.LastUpdate = position.Timestamp
	} else {
		logger.WarnCtx(ctx, "Latest position unavailable for share",
			logger.String("alert_id", token.AlertID),
			logger.Err(err))
	}

	if _, err := uc.cache.IncrementResolveCount(ctx, token.ID); err != nil {
		logger.WarnCtx(ctx, "Failed to bump resolve counter",
			logger.String("token_id", token.ID),
			logger.Err(err))
	}

	return view, nil
}

// vehicleDescriptor builds the masked public description of the
// subject's vehicle
func vehicleDescriptor(profile models.SubjectProfile) string {
	parts := []string{}
	if profile.VehicleBrand != "" {
		parts = append(parts, profile.VehicleBrand)
	}
	if profile.VehicleModel != "" {
		parts = append(parts, profile.VehicleModel)
	}
	if profile.VehicleColor != "" {
		parts = append(parts, profile.VehicleColor)
	}
	descriptor := strings.Join(parts, " ")
	if profile.VehiclePlate != "" {
		masked := utils.MaskPlate(profile.VehiclePlate)
		if descriptor == "" {
			return masked
		}
		descriptor = fmt.Sprintf("%s (%s)", descriptor, masked)
	}
	return descriptor
}
