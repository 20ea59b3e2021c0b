package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api
// Sample request: https://geocoding-api.open-meteo.com/v1/search?name=Berlin&count=1&language=en&format=json
const (
	baseGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
)

type GeocodingClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewGeocodingClient creates a geocoding client. An empty baseURL selects the
// public endpoint and a nil httpClient selects a zero-value client.
func NewGeocodingClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *GeocodingClient {
	if baseURL == "" {
		baseURL = baseGeocodingURL
	}
	return &GeocodingClient{
		httpClient: orDefaultClient(httpClient),
		baseURL:    baseURL,
		logger:     logger.With("component", "openmeteo-geocoding-client"),
	}
}

// Search returns at most count matches for name.
func (c *GeocodingClient) Search(ctx context.Context, name string, count int) (*GeocodingAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("name", name)
	q.Set("count", fmt.Sprintf("%d", count))
	q.Set("language", "en")
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	var apiResp GeocodingAPIResponse
	if err := getJSON(ctx, c.httpClient, c.logger, u, &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}
