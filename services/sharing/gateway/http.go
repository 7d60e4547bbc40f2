package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	httpclient "github.com/sentinela-app/sentinela/internal/pkg/http"
	"github.com/sentinela-app/sentinela/internal/pkg/models"
)

// envelope mirrors the standard response wrapper used by every service
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// AlertsGW calls the alerts service's internal API with the sharing
// service's API key
type AlertsGW struct {
	client *httpclient.APIKeyClient
}

// NewAlertsGW creates a new alerts gateway
func NewAlertsGW(cfg *models.Config) *AlertsGW {
	return &AlertsGW{
		client: httpclient.NewAPIKeyClient(&cfg.APIKey, "sharing-service", cfg.Services.AlertsServiceURL),
	}
}

// IssueDelegationToken mints a delegation token for the alert
func (g *AlertsGW) IssueDelegationToken(ctx context.Context, req models.IssueTokenRequest) (*models.IssuedToken, error) {
	var resp envelope
	if err := g.client.PostJSON(ctx, "/internal/tokens", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to mint delegation token: %w", err)
	}

	var issued models.IssuedToken
	if err := json.Unmarshal(resp.Data, &issued); err != nil {
		return nil, fmt.Errorf("failed to decode issued token: %w", err)
	}
	return &issued, nil
}

// ResolveDelegationToken resolves a delegation token. A non-2xx reply
// surfaces as an error; the use case collapses it to the uniform
// invalid result.
func (g *AlertsGW) ResolveDelegationToken(ctx context.Context, code string) (*models.AccessToken, error) {
	endpoint := "/internal/tokens/resolve?code=" + url.QueryEscape(code)

	var resp envelope
	if err := g.client.GetJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to resolve delegation token: %w", err)
	}

	var token models.AccessToken
	if err := json.Unmarshal(resp.Data, &token); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	return &token, nil
}

// GetAlertSummary fetches the alert plus subject display profile
func (g *AlertsGW) GetAlertSummary(ctx context.Context, alertID string) (*models.AlertSummary, error) {
	endpoint := "/internal/alerts/" + url.PathEscape(alertID) + "/summary"

	var resp envelope
	if err := g.client.GetJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to get alert summary: %w", err)
	}

	var summary models.AlertSummary
	if err := json.Unmarshal(resp.Data, &summary); err != nil {
		return nil, fmt.Errorf("failed to decode alert summary: %w", err)
	}
	return &summary, nil
}

// LocationGW calls the location service's internal API with the
// sharing service's API key
type LocationGW struct {
	client *httpclient.APIKeyClient
}

// NewLocationGW creates a new location gateway
func NewLocationGW(cfg *models.Config) *LocationGW {
	return &LocationGW{
		client: httpclient.NewAPIKeyClient(&cfg.APIKey, "sharing-service", cfg.Services.LocationServiceURL),
	}
}

// LatestPosition fetches the alert's latest position
func (g *LocationGW) LatestPosition(ctx context.Context, alertID string) (*models.Position, error) {
	endpoint := "/internal/alerts/" + url.PathEscape(alertID) + "/position/latest"

	var resp envelope
	if err := g.client.GetJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to get latest position: %w", err)
	}

	var position models.Position
	if err := json.Unmarshal(resp.Data, &position); err != nil {
		return nil, fmt.Errorf("failed to decode position: %w", err)
	}
	return &position, nil
}
