package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentinela-app/sentinela/internal/pkg/constants"
	"github.com/sentinela-app/sentinela/internal/pkg/database"
	"github.com/sentinela-app/sentinela/internal/pkg/models"
)

func setupCacheTest(t *testing.T) (*PositionCache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cache := NewPositionCache(&database.RedisClient{Client: client})
	return cache, mr
}

func TestLatestPosition_RoundTrip(t *testing.T) {
	cache, _ := setupCacheTest(t)

	position := &models.Position{
		Latitude:  -23.5505,
		Longitude: -46.6333,
		Accuracy:  8,
		Speed:     3.2,
		Heading:   270,
		Timestamp: time.Unix(1756500000, 0),
	}

	err := cache.SetLatestPosition(context.Background(), "alert-1", position)
	require.NoError(t, err)

	got, err := cache.GetLatestPosition(context.Background(), "alert-1")
	require.NoError(t, err)
	assert.Equal(t, position.Latitude, got.Latitude)
	assert.Equal(t, position.Longitude, got.Longitude)
	assert.Equal(t, position.Speed, got.Speed)
	assert.Equal(t, position.Timestamp.Unix(), got.Timestamp.Unix())
}

func TestGetLatestPosition_Miss(t *testing.T) {
	cache, _ := setupCacheTest(t)

	got, err := cache.GetLatestPosition(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAlertStatusCache(t *testing.T) {
	cache, _ := setupCacheTest(t)

	err := cache.SetAlertStatus(context.Background(), "alert-1", models.AlertStatusInvestigating)
	require.NoError(t, err)

	status, err := cache.GetAlertStatus(context.Background(), "alert-1")
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusInvestigating, status)
}

func TestGetAlertStatus_MissReturnsEmpty(t *testing.T) {
	cache, _ := setupCacheTest(t)

	status, err := cache.GetAlertStatus(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatus(""), status)
}

func TestRemoveLatestPosition(t *testing.T) {
	cache, mr := setupCacheTest(t)

	position := &models.Position{Latitude: -23.55, Longitude: -46.63, Timestamp: time.Now()}
	require.NoError(t, cache.SetLatestPosition(context.Background(), "alert-1", position))
	require.NoError(t, cache.AddToGeoIndex(context.Background(), "alert-1", position.Longitude, position.Latitude))

	err := cache.RemoveLatestPosition(context.Background(), "alert-1")
	require.NoError(t, err)

	got, err := cache.GetLatestPosition(context.Background(), "alert-1")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, mr.Exists(fmt.Sprintf(constants.KeyAlertLatestPosition, "alert-1")))
}

func TestLatestPositionExpires(t *testing.T) {
	cache, mr := setupCacheTest(t)

	position := &models.Position{Latitude: -23.55, Longitude: -46.63, Timestamp: time.Now()}
	require.NoError(t, cache.SetLatestPosition(context.Background(), "alert-1", position))

	mr.FastForward(latestPositionTTL + time.Minute)

	got, err := cache.GetLatestPosition(context.Background(), "alert-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
