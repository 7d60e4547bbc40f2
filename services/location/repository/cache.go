package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/sentinela-app/sentinela/internal/pkg/constants"
	"github.com/sentinela-app/sentinela/internal/pkg/database"
	"github.com/sentinela-app/sentinela/internal/pkg/models"
)

const (
	// latestPositionTTL keeps stale positions from lingering after an
	// alert goes quiet
	latestPositionTTL = 24 * time.Hour

	// statusCacheTTL bounds how long a cached status outlives its alert
	statusCacheTTL = 7 * 24 * time.Hour
)

// PositionCache provides the Redis hot path for the position stream
type PositionCache struct {
	redisClient *database.RedisClient
}

// NewPositionCache creates a new position cache
func NewPositionCache(redisClient *database.RedisClient) *PositionCache {
	return &PositionCache{
		redisClient: redisClient,
	}
}

// SetLatestPosition stores the alert's latest position hash
func (c *PositionCache) SetLatestPosition(ctx context.Context, alertID string, position *models.Position) error {
	key := fmt.Sprintf(constants.KeyAlertLatestPosition, alertID)
	fields := map[string]interface{}{
		constants.FieldLatitude:   strconv.FormatFloat(position.Latitude, 'f', -1, 64),
		constants.FieldLongitude:  strconv.FormatFloat(position.Longitude, 'f', -1, 64),
		constants.FieldAccuracy:   strconv.FormatFloat(position.Accuracy, 'f', -1, 64),
		constants.FieldSpeed:      strconv.FormatFloat(position.Speed, 'f', -1, 64),
		constants.FieldHeading:    strconv.FormatFloat(position.Heading, 'f', -1, 64),
		constants.FieldRecordedAt: strconv.FormatInt(position.Timestamp.Unix(), 10),
	}

	if err := c.redisClient.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store latest position: %w", err)
	}
	return c.redisClient.Client.Expire(ctx, key, latestPositionTTL).Err()
}

// GetLatestPosition reads the alert's latest position hash, nil on miss
func (c *PositionCache) GetLatestPosition(ctx context.Context, alertID string) (*models.Position, error) {
	key := fmt.Sprintf(constants.KeyAlertLatestPosition, alertID)

	fields, err := c.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read latest position: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(fields[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cached latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(fields[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cached longitude: %w", err)
	}
	ts, err := strconv.ParseInt(fields[constants.FieldRecordedAt], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cached timestamp: %w", err)
	}

	// Optional fields default to zero when absent.
	acc, _ := strconv.ParseFloat(fields[constants.FieldAccuracy], 64)
	spd, _ := strconv.ParseFloat(fields[constants.FieldSpeed], 64)
	hdg, _ := strconv.ParseFloat(fields[constants.FieldHeading], 64)

	return &models.Position{
		Latitude:  lat,
		Longitude: lng,
		Accuracy:  acc,
		Speed:     spd,
		Heading:   hdg,
		Timestamp: time.Unix(ts, 0),
	}, nil
}

// SetAlertStatus caches the alert's lifecycle status
func (c *PositionCache) SetAlertStatus(ctx context.Context, alertID string, status models.AlertStatus) error {
	key := fmt.Sprintf(constants.KeyAlertStatusCache, alertID)
	return c.redisClient.Set(ctx, key, string(status), statusCacheTTL)
}

// GetAlertStatus returns the cached status, empty string on miss
func (c *PositionCache) GetAlertStatus(ctx context.Context, alertID string) (models.AlertStatus, error) {
	key := fmt.Sprintf(constants.KeyAlertStatusCache, alertID)

	val, err := c.redisClient.Get(ctx, key)
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read cached status: %w", err)
	}
	return models.AlertStatus(val), nil
}

// AddToGeoIndex records the alert's latest position in the geo set
func (c *PositionCache) AddToGeoIndex(ctx context.Context, alertID string, longitude, latitude float64) error {
	return c.redisClient.GeoAdd(ctx, constants.KeyAlertGeo, longitude, latitude, alertID)
}

// NearbyAlerts returns alerts within radiusKm of the given point,
// closest first
func (c *PositionCache) NearbyAlerts(ctx context.Context, longitude, latitude, radiusKm float64) ([]models.NearbyAlert, error) {
	locations, err := c.redisClient.GeoRadius(ctx, constants.KeyAlertGeo, longitude, latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query geo index: %w", err)
	}

	nearby := make([]models.NearbyAlert, 0, len(locations))
	for _, loc := range locations {
		nearby = append(nearby, models.NearbyAlert{
			AlertID:    loc.Name,
			Latitude:   loc.Latitude,
			Longitude:  loc.Longitude,
			DistanceKm: loc.Dist,
		})
	}
	return nearby, nil
}

// RemoveLatestPosition drops the alert from the hot path once it goes
// terminal. The Postgres samples remain for audit.
func (c *PositionCache) RemoveLatestPosition(ctx context.Context, alertID string) error {
	key := fmt.Sprintf(constants.KeyAlertLatestPosition, alertID)
	if err := c.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to drop latest position: %w", err)
	}
	return c.redisClient.Client.ZRem(ctx, constants.KeyAlertGeo, alertID).Err()
}
