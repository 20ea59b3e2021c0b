package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=52.52&longitude=13.41&current=temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m,visibility,surface_pressure&temperature_unit=celsius
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"
)

var currentVars = []string{
	"temperature_2m",
	"relative_humidity_2m",
	"weather_code",
	"wind_speed_10m",
	"visibility",
	"surface_pressure",
}

var dailyVars = []string{
	"weather_code",
	"temperature_2m_max",
	"temperature_2m_min",
}

// Units carries the upstream unit parameters for a request.
type Units struct {
	Temperature string // celsius, fahrenheit
	WindSpeed   string // kmh, ms, mph, kn
}

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewForecastClient creates a forecast client. An empty baseURL selects the
// public endpoint and a nil httpClient selects a zero-value client.
func NewForecastClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *ForecastClient {
	if baseURL == "" {
		baseURL = baseForecastURL
	}
	return &ForecastClient{
		httpClient: orDefaultClient(httpClient),
		baseURL:    baseURL,
		logger:     logger.With("component", "openmeteo-forecast-client"),
	}
}

// GetCurrent fetches current conditions. An empty timezone leaves the
// parameter off so the API reports times in GMT.
func (c *ForecastClient) GetCurrent(ctx context.Context, latitude, longitude float64, timezone string, units Units) (*ForecastAPIResponse, error) {
	u, err := c.buildURL(latitude, longitude, timezone, units)
	if err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("current", strings.Join(currentVars, ","))
	u.RawQuery = q.Encode()

	var apiResp ForecastAPIResponse
	if err := getJSON(ctx, c.httpClient, c.logger, u, &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

// GetDaily fetches forecastDays days of daily aggregates.
func (c *ForecastClient) GetDaily(ctx context.Context, latitude, longitude float64, timezone string, units Units, forecastDays int) (*ForecastAPIResponse, error) {
	u, err := c.buildURL(latitude, longitude, timezone, units)
	if err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	u.RawQuery = q.Encode()

	var apiResp ForecastAPIResponse
	if err := getJSON(ctx, c.httpClient, c.logger, u, &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

func (c *ForecastClient) buildURL(latitude, longitude float64, timezone string, units Units) (*url.URL, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	if timezone != "" {
		q.Set("timezone", timezone)
	}
	if units.Temperature != "" {
		q.Set("temperature_unit", units.Temperature)
	}
	if units.WindSpeed != "" {
		q.Set("wind_speed_unit", units.WindSpeed)
	}
	u.RawQuery = q.Encode()

	return u, nil
}
