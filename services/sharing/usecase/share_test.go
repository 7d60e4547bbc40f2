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
	"github.com/sentinela-app/sentinela/services/sharing"
	"github.com/sentinela-app/sentinela/services/sharing/mocks"
)

func newTestUC(t *testing.T) (*sharingUC, *mocks.MockAlertsGW, *mocks.MockLocationGW, *mocks.MockShareCache) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	alertsGW := mocks.NewMockAlertsGW(ctrl)
	locationGW := mocks.NewMockLocationGW(ctrl)
	cache := mocks.NewMockShareCache(ctrl)

	uc := &sharingUC{
		cfg:        &models.Config{},
		alertsGW:   alertsGW,
		locationGW: locationGW,
		cache:      cache,
	}
	return uc, alertsGW, locationGW, cache
}

func TestShareAlert_Success(t *testing.T) {
	uc, alertsGW, _, _ := newTestUC(t)
	ctx := context.Background()

	expiry := time.Now().Add(240 * time.Minute)
	alertsGW.EXPECT().
		IssueDelegationToken(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.IssueTokenRequest) (*models.IssuedToken, error) {
			assert.Equal(t, "alert-1", req.AlertID)
			assert.Equal(t, models.PurposeDelegation, req.Purpose)
			assert.Equal(t, "Maria (mae)", req.BoundIdentity)
			return &models.IssuedToken{
				AlertID:   "alert-1",
				Purpose:   models.PurposeDelegation,
				Code:      "a-long-opaque-token",
				ExpiresAt: expiry,
			}, nil
		})

	resp, err := uc.ShareAlert(ctx, "operator-1", models.ShareRequest{
		AlertID:    "alert-1",
		ViewerName: "  Maria (mae)  ",
	})

	require.NoError(t, err)
	assert.Equal(t, "a-long-opaque-token", resp.Token)
	assert.Equal(t, "alert-1", resp.AlertID)
	assert.Equal(t, "Maria (mae)", resp.ViewerName)
	assert.Equal(t, expiry, resp.ExpiresAt)
}

func TestShareAlert_MissingViewer(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	_, err := uc.ShareAlert(context.Background(), "operator-1", models.ShareRequest{
		AlertID:    "alert-1",
		ViewerName: "   ",
	})

	assert.ErrorIs(t, err, sharing.ErrMissingViewer)
}

func TestShareAlert_MissingAlert(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	_, err := uc.ShareAlert(context.Background(), "operator-1", models.ShareRequest{
		ViewerName: "Maria",
	})

	assert.ErrorIs(t, err, sharing.ErrMissingAlert)
}

func TestShareAlert_UpstreamFailure(t *testing.T) {
	uc, alertsGW, _, _ := newTestUC(t)
	ctx := context.Background()

	alertsGW.EXPECT().
		IssueDelegationToken(ctx, gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := uc.ShareAlert(ctx, "operator-1", models.ShareRequest{
		AlertID:    "alert-1",
		ViewerName: "Maria",
	})

	assert.ErrorIs(t, err, sharing.ErrUpstreamUnavailable)
}

func resolvedShareToken() *models.AccessToken {
	return &models.AccessToken{
		ID:            "token-1",
		AlertID:       "alert-1",
		Purpose:       models.PurposeDelegation,
		Code:          "a-long-opaque-token",
		BoundIdentity: "Maria (mae)",
		IssuedAt:      time.Now().Add(-10 * time.Minute),
		ExpiresAt:     time.Now().Add(230 * time.Minute),
	}
}

func shareSummary() *models.AlertSummary {
	return &models.AlertSummary{
		Alert: models.Alert{
			ID:        "alert-1",
			SubjectID: "subject-1",
			Status:    models.AlertStatusActive,
			CreatedAt: time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC),
		},
		Profile: models.SubjectProfile{
			SubjectID:    "subject-1",
			DisplayName:  "Ana S.",
			VehicleBrand: "Fiat",
			VehicleModel: "Argo",
			VehicleColor: "Prata",
			VehiclePlate: "BRA2E19",
		},
	}
}

func TestResolveShare_Success(t *testing.T) {
	uc, alertsGW, locationGW, cache := newTestUC(t)
	ctx := context.Background()

	fixTime := time.Date(2026, 3, 14, 21, 42, 0, 0, time.UTC)

	alertsGW.EXPECT().ResolveDelegationToken(ctx, "a-long-opaque-token").Return(resolvedShareToken(), nil)
	alertsGW.EXPECT().GetAlertSummary(ctx, "alert-1").Return(shareSummary(), nil)
	locationGW.EXPECT().LatestPosition(ctx, "alert-1").Return(&models.Position{
		Latitude:  -23.5505,
		Longitude: -46.6333,
		Timestamp: fixTime,
	}, nil)
	cache.EXPECT().IncrementResolveCount(ctx, "token-1").Return(int64(1), nil)

	view, err := uc.ResolveShare(ctx, " a-long-opaque-token ")

	require.NoError(t, err)
	assert.Equal(t, "alert-1", view.AlertID)
	assert.Equal(t, "Ana S.", view.SubjectName)
	assert.Equal(t, "Fiat Argo Prata (BRA****)", view.Vehicle)
	assert.Equal(t, models.AlertStatusActive, view.Status)
	require.NotNil(t, view.Position)
	assert.Equal(t, -23.5505, view.Position.Latitude)
	assert.Equal(t, fixTime, view.LastUpdate)
}

func TestResolveShare_PositionUnavailableStillResolves(t *testing.T) {
	uc, alertsGW, locationGW, cache := newTestUC(t)
	ctx := context.Background()

	alertsGW.EXPECT().ResolveDelegationToken(ctx, "a-long-opaque-token").Return(resolvedShareToken(), nil)
	alertsGW.EXPECT().GetAlertSummary(ctx, "alert-1").Return(shareSummary(), nil)
	locationGW.EXPECT().LatestPosition(ctx, "alert-1").Return(nil, errors.New("location service down"))
	cache.EXPECT().IncrementResolveCount(ctx, "token-1").Return(int64(2), nil)

	view, err := uc.ResolveShare(ctx, "a-long-opaque-token")

	require.NoError(t, err)
	assert.Nil(t, view.Position)
	assert.Equal(t, shareSummary().Alert.CreatedAt, view.LastUpdate)
}

func TestResolveShare_EmptyToken(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	_, err := uc.ResolveShare(context.Background(), "   ")

	assert.ErrorIs(t, err, sharing.ErrShareInvalid)
}

func TestResolveShare_UnknownTokenCollapsesToInvalid(t *testing.T) {
	uc, alertsGW, _, _ := newTestUC(t)
	ctx := context.Background()

	alertsGW.EXPECT().
		ResolveDelegationToken(ctx, "no-such-token").
		Return(nil, errors.New("invalid"))

	_, err := uc.ResolveShare(ctx, "no-such-token")

	assert.ErrorIs(t, err, sharing.ErrShareInvalid)
}

func TestResolveShare_SummaryFailureIsUpstream(t *testing.T) {
	uc, alertsGW, _, _ := newTestUC(t)
	ctx := context.Background()

	alertsGW.EXPECT().ResolveDelegationToken(ctx, "a-long-opaque-token").Return(resolvedShareToken(), nil)
	alertsGW.EXPECT().GetAlertSummary(ctx, "alert-1").Return(nil, errors.New("timeout"))

	_, err := uc.ResolveShare(ctx, "a-long-opaque-token")

	assert.ErrorIs(t, err, sharing.ErrUpstreamUnavailable)
}

func TestResolveShare_CounterFailureTolerated(t *testing.T) {
	uc, alertsGW, locationGW, cache := newTestUC(t)
	ctx := context.Background()

	alertsGW.EXPECT().ResolveDelegationToken(ctx, "a-long-opaque-token").Return(resolvedShareToken(), nil)
	alertsGW.EXPECT().GetAlertSummary(ctx, "alert-1").Return(shareSummary(), nil)
	locationGW.EXPECT().LatestPosition(ctx, "alert-1").Return(nil, errors.New("no fix"))
	cache.EXPECT().IncrementResolveCount(ctx, "token-1").Return(int64(0), errors.New("redis down"))

	view, err := uc.ResolveShare(ctx, "a-long-opaque-token")

	require.NoError(t, err)
	assert.Equal(t, "alert-1", view.AlertID)
}

func TestVehicleDescriptor_PlateOnly(t *testing.T) {
	descriptor := vehicleDescriptor(models.SubjectProfile{VehiclePlate: "ABC1D23"})
	assert.Equal(t, "ABC****", descriptor)
}

func TestVehicleDescriptor_NoVehicle(t *testing.T) {
	descriptor := vehicleDescriptor(models.SubjectProfile{})
	assert.Equal(t, "", descriptor)
}
