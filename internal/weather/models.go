package weather

import "pixel-weather/internal/types"

const (
	DefaultForecastDays = 5
	MaxForecastDays     = 16

	// DefaultVisibilityKm is reported when the upstream omits visibility.
	DefaultVisibilityKm = 10.0
)

// CurrentConditions is the normalized current weather for one location.
// Temperatures and wind speed are in Units; nothing is converted locally.
// FeelsLikeTemperature equals Temperature because the upstream request does
// not ask for apparent temperature.
type CurrentConditions struct {
	PlaceName            string           `json:"placeName"`
	Country              string           `json:"country,omitempty"`
	Units                types.UnitSystem `json:"units"`
	Temperature          float64          `json:"temperature"`
	FeelsLikeTemperature float64          `json:"feelsLikeTemperature"`
	HumidityPercent      float64          `json:"humidityPercent"`
	PressureHPa          float64          `json:"pressureHPa"`
	WindSpeed            float64          `json:"windSpeed"`
	VisibilityKm         float64          `json:"visibilityKm"`
	types.Condition
}

// ForecastEntry is one day of the forecast.
type ForecastEntry struct {
	EpochSeconds int64   `json:"epochSeconds"`
	MeanTemp     float64 `json:"meanTemp"`
	MaxTemp      float64 `json:"maxTemp"`
	MinTemp      float64 `json:"minTemp"`
	types.Condition
}

// Forecast holds one entry per day in ascending date order.
type Forecast []ForecastEntry
