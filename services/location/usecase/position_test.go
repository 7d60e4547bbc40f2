package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentinela-app/sentinela/internal/pkg/models"
	"github.com/sentinela-app/sentinela/services/location"
	"github.com/sentinela-app/sentinela/services/location/mocks"
)

func newTestUC(t *testing.T) (*locationUC, *mocks.MockPositionRepo, *mocks.MockPositionCache, *mocks.MockLocationGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockPositionRepo(ctrl)
	mockCache := mocks.NewMockPositionCache(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)

	uc := NewLocationUC(&models.Config{}, mockRepo, mockCache, mockGW).(*locationUC)
	return uc, mockRepo, mockCache, mockGW
}

func samplePosition() models.Position {
	return models.Position{
		Latitude:  -23.5505,
		Longitude: -46.6333,
		Accuracy:  12.5,
		Timestamp: time.Now(),
	}
}

func TestAppendPosition_LiveAlertPublishes(t *testing.T) {
	uc, mockRepo, mockCache, mockGW := newTestUC(t)

	position := samplePosition()

	mockRepo.EXPECT().AppendPosition(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sample *models.PositionSample) error {
			assert.Equal(t, "alert-1", sample.AlertID)
			assert.NotEmpty(t, sample.Geohash)
			sample.ID = 42
			return nil
		})
	mockCache.EXPECT().GetAlertStatus(gomock.Any(), "alert-1").Return(models.AlertStatusInvestigating, nil)
	mockCache.EXPECT().SetLatestPosition(gomock.Any(), "alert-1", gomock.Any()).Return(nil)
	mockCache.EXPECT().AddToGeoIndex(gomock.Any(), "alert-1", position.Longitude, position.Latitude).Return(nil)
	mockGW.EXPECT().PublishPositionUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event *models.PositionUpdateEvent) error {
			assert.Equal(t, "alert-1", event.AlertID)
			assert.Equal(t, position.Latitude, event.Position.Latitude)
			return nil
		})

	sample, err := uc.AppendPosition(context.Background(), "alert-1", models.AppendPositionRequest{Position: position})

	require.NoError(t, err)
	assert.Equal(t, int64(42), sample.ID)
}

func TestAppendPosition_TerminalAlertStoredNotPublished(t *testing.T) {
	uc, mockRepo, mockCache, _ := newTestUC(t)

	mockRepo.EXPECT().AppendPosition(gomock.Any(), gomock.Any()).Return(nil)
	mockCache.EXPECT().GetAlertStatus(gomock.Any(), "alert-1").Return(models.AlertStatusResolved, nil)
	// No SetLatestPosition, no AddToGeoIndex, no publish.

	sample, err := uc.AppendPosition(context.Background(), "alert-1", models.AppendPositionRequest{Position: samplePosition()})

	require.NoError(t, err)
	assert.NotNil(t, sample)
}

func TestAppendPosition_CacheMissPublishes(t *testing.T) {
	uc, mockRepo, mockCache, mockGW := newTestUC(t)

	mockRepo.EXPECT().AppendPosition(gomock.Any(), gomock.Any()).Return(nil)
	mockCache.EXPECT().GetAlertStatus(gomock.Any(), "alert-1").Return(models.AlertStatus(""), nil)
	mockCache.EXPECT().SetLatestPosition(gomock.Any(), "alert-1", gomock.Any()).Return(nil)
	mockCache.EXPECT().AddToGeoIndex(gomock.Any(), "alert-1", gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishPositionUpdate(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.AppendPosition(context.Background(), "alert-1", models.AppendPositionRequest{Position: samplePosition()})

	require.NoError(t, err)
}

func TestAppendPosition_OutOfRangeRejected(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	_, err := uc.AppendPosition(context.Background(), "alert-1", models.AppendPositionRequest{
		Position: models.Position{Latitude: 91, Longitude: 0},
	})

	assert.ErrorIs(t, err, location.ErrInvalidPosition)
}

func TestAppendPosition_ZeroTimestampDefaulted(t *testing.T) {
	uc, mockRepo, mockCache, mockGW := newTestUC(t)

	mockRepo.EXPECT().AppendPosition(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sample *models.PositionSample) error {
			assert.False(t, sample.RecordedAt.IsZero())
			return nil
		})
	mockCache.EXPECT().GetAlertStatus(gomock.Any(), "alert-1").Return(models.AlertStatusActive, nil)
	mockCache.EXPECT().SetLatestPosition(gomock.Any(), "alert-1", gomock.Any()).Return(nil)
	mockCache.EXPECT().AddToGeoIndex(gomock.Any(), "alert-1", gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishPositionUpdate(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.AppendPosition(context.Background(), "alert-1", models.AppendPositionRequest{
		Position: models.Position{Latitude: -23.55, Longitude: -46.63},
	})

	require.NoError(t, err)
}

func TestLatestPosition_CacheHit(t *testing.T) {
	uc, _, mockCache, _ := newTestUC(t)

	cached := &models.Position{Latitude: -23.55, Longitude: -46.63, Timestamp: time.Now()}
	mockCache.EXPECT().GetLatestPosition(gomock.Any(), "alert-1").Return(cached, nil)

	position, err := uc.LatestPosition(context.Background(), "alert-1")

	require.NoError(t, err)
	assert.Equal(t, cached, position)
}

func TestLatestPosition_CacheMissFallsBackToDatabase(t *testing.T) {
	uc, mockRepo, mockCache, _ := newTestUC(t)

	sample := &models.PositionSample{
		AlertID:  "alert-1",
		Position: models.Position{Latitude: -23.55, Longitude: -46.63},
	}

	mockCache.EXPECT().GetLatestPosition(gomock.Any(), "alert-1").Return(nil, nil)
	mockRepo.EXPECT().GetLatestPosition(gomock.Any(), "alert-1").Return(sample, nil)

	position, err := uc.LatestPosition(context.Background(), "alert-1")

	require.NoError(t, err)
	assert.Equal(t, -23.55, position.Latitude)
}

func TestLatestPosition_NoSamples(t *testing.T) {
	uc, mockRepo, mockCache, _ := newTestUC(t)

	mockCache.EXPECT().GetLatestPosition(gomock.Any(), "alert-1").Return(nil, nil)
	mockRepo.EXPECT().GetLatestPosition(gomock.Any(), "alert-1").Return(nil, nil)

	_, err := uc.LatestPosition(context.Background(), "alert-1")

	assert.ErrorIs(t, err, location.ErrNoPosition)
}

func TestLatestPosition_CacheErrorFallsBack(t *testing.T) {
	uc, mockRepo, mockCache, _ := newTestUC(t)

	sample := &models.PositionSample{
		AlertID:  "alert-1",
		Position: models.Position{Latitude: -23.55, Longitude: -46.63},
	}

	mockCache.EXPECT().GetLatestPosition(gomock.Any(), "alert-1").Return(nil, errors.New("redis down"))
	mockRepo.EXPECT().GetLatestPosition(gomock.Any(), "alert-1").Return(sample, nil)

	position, err := uc.LatestPosition(context.Background(), "alert-1")

	require.NoError(t, err)
	assert.Equal(t, -23.55, position.Latitude)
}

func TestGetPositionHistory_InvertedRangeRejected(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	now := time.Now()
	_, err := uc.GetPositionHistory(context.Background(), "alert-1", now, now.Add(-time.Hour))

	assert.Error(t, err)
}

func TestNearbyAlerts(t *testing.T) {
	uc, _, mockCache, _ := newTestUC(t)

	nearby := []models.NearbyAlert{{AlertID: "alert-1", DistanceKm: 1.2}}
	mockCache.EXPECT().NearbyAlerts(gomock.Any(), -46.63, -23.55, 5.0).Return(nearby, nil)

	result, err := uc.NearbyAlerts(context.Background(), &models.Position{Latitude: -23.55, Longitude: -46.63}, 5.0)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestNearbyAlerts_NonPositiveRadiusRejected(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	_, err := uc.NearbyAlerts(context.Background(), &models.Position{Latitude: 0, Longitude: 0}, 0)

	assert.Error(t, err)
}

func TestSyncAlertStatus_LiveStatusCachedOnly(t *testing.T) {
	uc, _, mockCache, _ := newTestUC(t)

	mockCache.EXPECT().SetAlertStatus(gomock.Any(), "alert-1", models.AlertStatusInvestigating).Return(nil)

	err := uc.SyncAlertStatus(context.Background(), "alert-1", models.AlertStatusInvestigating)

	assert.NoError(t, err)
}

func TestSyncAlertStatus_TerminalDropsHotPath(t *testing.T) {
	uc, _, mockCache, _ := newTestUC(t)

	mockCache.EXPECT().SetAlertStatus(gomock.Any(), "alert-1", models.AlertStatusResolved).Return(nil)
	mockCache.EXPECT().RemoveLatestPosition(gomock.Any(), "alert-1").Return(nil)

	err := uc.SyncAlertStatus(context.Background(), "alert-1", models.AlertStatusResolved)

	assert.NoError(t, err)
}
