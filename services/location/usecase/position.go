package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sentinela-app/sentinela/internal/pkg/logger"
	"github.com/sentinela-app/sentinela/internal/pkg/models"
	"github.com/sentinela-app/sentinela/internal/utils"
	"github.com/sentinela-app/sentinela/services/location"
)

// geohashPrecision gives roughly street-block sized buckets in the
// audit rows
const geohashPrecision = 7

// AppendPosition stores a position sample. The Postgres append always
// happens; the publish and hot-path update are skipped once the alert
// is terminal, so closed alerts keep their audit trail without waking
// any live subscriber.
func (uc *locationUC) AppendPosition(ctx context.Context, alertID string, req models.AppendPositionRequest) (*models.PositionSample, error) {
	position := req.Position
	if err := validatePosition(&position); err != nil {
		return nil, err
	}
	if position.Timestamp.IsZero() {
		position.Timestamp = models.Now()
	}

	sample := &models.PositionSample{
		AlertID:    alertID,
		Position:   position,
		Geohash:    utils.EncodePosition(position, geohashPrecision),
		RecordedAt: position.Timestamp,
	}

	if err := uc.positionRepo.AppendPosition(ctx, sample); err != nil {
		return nil, err
	}

	status, err := uc.cache.GetAlertStatus(ctx, alertID)
	if err != nil {
		// A cache failure must not drop a live update. Fall through and
		// publish; downstream consumers tolerate at-least-once anyway.
		logger.WarnCtx(ctx, "Status cache unavailable, publishing sample anyway",
			logger.String("alert_id", alertID),
			logger.Err(err))
	}
	if status.IsTerminal() {
		logger.InfoCtx(ctx, "Sample stored on terminal alert, not published",
			logger.String("alert_id", alertID),
			logger.String("status", string(status)))
		return sample, nil
	}

	if err := uc.cache.SetLatestPosition(ctx, alertID, &position); err != nil {
		logger.ErrorCtx(ctx, "Failed to update latest position cache",
			logger.String("alert_id", alertID),
			logger.Err(err))
	}
	if err := uc.cache.AddToGeoIndex(ctx, alertID, position.Longitude, position.Latitude); err != nil {
		logger.ErrorCtx(ctx, "Failed to update geo index",
			logger.String("alert_id", alertID),
			logger.Err(err))
	}

	event := &models.PositionUpdateEvent{
		AlertID:    alertID,
		Position:   position,
		RecordedAt: sample.RecordedAt,
	}
	if err := uc.locationGW.PublishPositionUpdate(ctx, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish position update",
			logger.String("alert_id", alertID),
			logger.Err(err))
	}

	return sample, nil
}

// LatestPosition reads the hot path first and falls back to Postgres
// when the cache has nothing
func (uc *locationUC) LatestPosition(ctx context.Context, alertID string) (*models.Position, error) {
	cached, err := uc.cache.GetLatestPosition(ctx, alertID)
	if err == nil && cached != nil {
		return cached, nil
	}
	if err != nil {
		logger.WarnCtx(ctx, "Latest position cache read failed, falling back to database",
			logger.String("alert_id", alertID),
			logger.Err(err))
	}

	sample, err := uc.positionRepo.GetLatestPosition(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if sample == nil {
		return nil, location.ErrNoPosition
	}
	return &sample.Position, nil
}

// GetPositionHistory returns samples within the time range
func (uc *locationUC) GetPositionHistory(ctx context.Context, alertID string, startTime, endTime time.Time) ([]*models.PositionSample, error) {
	if startTime.After(endTime) {
		return nil, fmt.Errorf("start time must be before end time")
	}
	return uc.positionRepo.GetPositionHistory(ctx, alertID, startTime, endTime)
}

// NearbyAlerts queries the geo index for alerts near a point
func (uc *locationUC) NearbyAlerts(ctx context.Context, position *models.Position, radiusKm float64) ([]models.NearbyAlert, error) {
	if err := validatePosition(position); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		return nil, fmt.Errorf("radius must be positive")
	}
	return uc.cache.NearbyAlerts(ctx, position.Longitude, position.Latitude, radiusKm)
}

// SyncAlertStatus updates the status cache from the alert event stream.
// Terminal alerts fall out of the hot path immediately.
func (uc *locationUC) SyncAlertStatus(ctx context.Context, alertID string, status models.AlertStatus) error {
	if err := uc.cache.SetAlertStatus(ctx, alertID, status); err != nil {
		return fmt.Errorf("failed to cache alert status: %w", err)
	}

	if status.IsTerminal() {
		if err := uc.cache.RemoveLatestPosition(ctx, alertID); err != nil {
			logger.ErrorCtx(ctx, "Failed to drop terminal alert from hot path",
				logger.String("alert_id", alertID),
				logger.Err(err))
		}
	}

	logger.InfoCtx(ctx, "Alert status synced",
		logger.String("alert_id", alertID),
		logger.String("status", string(status)))
	return nil
}

func validatePosition(position *models.Position) error {
	if position == nil {
		return location.ErrInvalidPosition
	}
	if position.Latitude < -90 || position.Latitude > 90 {
		return location.ErrInvalidPosition
	}
	if position.Longitude < -180 || position.Longitude > 180 {
		return location.ErrInvalidPosition
	}
	return nil
}
