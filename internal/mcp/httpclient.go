package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/analytics"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/models"
)

// HTTPClient implements DataSource by calling the tracker's REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("httpclient: decode %s: %w", path, err)
	}
	return nil
}

func (c *HTTPClient) Templates(ctx context.Context) ([]models.WorkoutTemplate, error) {
	var out []models.WorkoutTemplate
	if err := c.get(ctx, "/api/v1/templates", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Logs(ctx context.Context) ([]models.WorkoutLog, error) {
	var out []models.WorkoutLog
	if err := c.get(ctx, "/api/v1/logs", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (models.Profile, error) {
	out := models.Profile{}
	if err := c.get(ctx, "/api/v1/profile", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Adherence(ctx context.Context) (analytics.AdherenceResult, error) {
	var out analytics.AdherenceResult
	err := c.get(ctx, "/api/v1/analytics/adherence", &out)
	return out, err
}

func (c *HTTPClient) VolumeSeries(ctx context.Context) ([]analytics.VolumePoint, error) {
	var out []analytics.VolumePoint
	if err := c.get(ctx, "/api/v1/analytics/volume", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Summary(ctx context.Context) (analytics.Summary, error) {
	var out analytics.Summary
	err := c.get(ctx, "/api/v1/analytics/summary", &out)
	return out, err
}

func (c *HTTPClient) ExerciseProgression(ctx context.Context, exerciseID string) ([]analytics.ExerciseSession, error) {
	var out []analytics.ExerciseSession
	if err := c.get(ctx, "/api/v1/analytics/exercises/"+url.PathEscape(exerciseID), &out); err != nil {
		return nil, err
	}
	return out, nil
}
