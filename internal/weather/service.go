package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"pixel-weather/internal/providers/openmeteo"
	"pixel-weather/internal/types"
)

var (
	ErrUpstream          = errors.New("weather data not available")
	ErrMalformedResponse = errors.New("malformed weather response")
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04"
)

type ForecastProvider interface {
	GetCurrent(ctx context.Context, latitude, longitude float64, timezone string, units openmeteo.Units) (*openmeteo.ForecastAPIResponse, error)
	GetDaily(ctx context.Context, latitude, longitude float64, timezone string, units openmeteo.Units, forecastDays int) (*openmeteo.ForecastAPIResponse, error)
}

type Service interface {
	FetchCurrent(ctx context.Context, loc types.Location, units types.UnitSystem) (*CurrentConditions, error)
	FetchForecast(ctx context.Context, loc types.Location, units types.UnitSystem, dayCount int) (Forecast, error)
}

type weatherService struct {
	forecastProvider ForecastProvider
	logger           *slog.Logger
}

func NewWeatherService(forecastProvider ForecastProvider, logger *slog.Logger) Service {
	return &weatherService{
		forecastProvider: forecastProvider,
		logger:           logger.With("component", "weather-service"),
	}
}

func (s *weatherService) FetchCurrent(ctx context.Context, loc types.Location, units types.UnitSystem) (*CurrentConditions, error) {
	units = types.ParseUnitSystem(string(units))

	apiResponse, err := s.forecastProvider.GetCurrent(
		ctx,
		loc.Coordinates.Latitude,
		loc.Coordinates.Longitude,
		loc.Timezone,
		upstreamUnits(units),
	)
	if err != nil {
		s.logger.Error("failed to get current conditions from provider",
			"latitude", loc.Coordinates.Latitude,
			"longitude", loc.Coordinates.Longitude,
			"error", err,
		)
		return nil, classifyProviderError(err)
	}

	current, err := mapCurrentResponse(loc, units, apiResponse)
	if err != nil {
		s.logger.Error("current conditions response is incomplete", "error", err)
		return nil, err
	}

	return current, nil
}

func (s *weatherService) FetchForecast(ctx context.Context, loc types.Location, units types.UnitSystem, dayCount int) (Forecast, error) {
	units = types.ParseUnitSystem(string(units))
	dayCount = normalizeDayCount(dayCount)

	apiResponse, err := s.forecastProvider.GetDaily(
		ctx,
		loc.Coordinates.Latitude,
		loc.Coordinates.Longitude,
		loc.Timezone,
		upstreamUnits(units),
		dayCount,
	)
	if err != nil {
		s.logger.Error("failed to get forecast from provider",
			"latitude", loc.Coordinates.Latitude,
			"longitude", loc.Coordinates.Longitude,
			"error", err,
		)
		return nil, classifyProviderError(err)
	}

	samples, err := mapDailyResponse(apiResponse, s.logger)
	if err != nil {
		s.logger.Error("forecast response is incomplete", "error", err)
		return nil, err
	}

	return selectDailyEntries(samples, dayCount), nil
}

func upstreamUnits(units types.UnitSystem) openmeteo.Units {
	return openmeteo.Units{
		Temperature: units.TemperatureUnit(),
		WindSpeed:   units.WindSpeedUnit(),
	}
}

// normalizeDayCount falls back to the default for non-positive counts and
// caps at the upstream maximum.
func normalizeDayCount(dayCount int) int {
	if dayCount <= 0 {
		return DefaultForecastDays
	}
	if dayCount > MaxForecastDays {
		return MaxForecastDays
	}
	return dayCount
}

func classifyProviderError(err error) error {
	if errors.Is(err, openmeteo.ErrDecode) {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return fmt.Errorf("%w: %w", ErrUpstream, err)
}

func mapCurrentResponse(loc types.Location, units types.UnitSystem, apiResponse *openmeteo.ForecastAPIResponse) (*CurrentConditions, error) {
	if apiResponse == nil || apiResponse.Current == nil {
		return nil, fmt.Errorf("%w: missing current block", ErrMalformedResponse)
	}
	c := apiResponse.Current

	missing := make([]string, 0)
	if c.Temperature2M == nil {
		missing = append(missing, "temperature_2m")
	}
	if c.RelativeHumidity2M == nil {
		missing = append(missing, "relative_humidity_2m")
	}
	if c.WeatherCode == nil {
		missing = append(missing, "weather_code")
	}
	if c.WindSpeed10M == nil {
		missing = append(missing, "wind_speed_10m")
	}
	if c.SurfacePressure == nil {
		missing = append(missing, "surface_pressure")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %v", ErrMalformedResponse, missing)
	}

	visibilityUnit := ""
	if apiResponse.CurrentUnits != nil {
		visibilityUnit = apiResponse.CurrentUnits.Visibility
	}

	return &CurrentConditions{
		PlaceName:            loc.DisplayName,
		Country:              loc.Country,
		Units:                units,
		Temperature:          *c.Temperature2M,
		FeelsLikeTemperature: *c.Temperature2M,
		HumidityPercent:      *c.RelativeHumidity2M,
		PressureHPa:          *c.SurfacePressure,
		WindSpeed:            *c.WindSpeed10M,
		VisibilityKm:         visibilityKm(c.Visibility, visibilityUnit),
		Condition:            types.Classify(*c.WeatherCode),
	}, nil
}

// visibilityKm converts the upstream visibility to kilometres. Absent or zero
// visibility reports DefaultVisibilityKm.
func visibilityKm(value *float64, unit string) float64 {
	if value == nil || *value == 0 {
		return DefaultVisibilityKm
	}
	meters := *value
	if unit == "ft" {
		meters *= types.FeetToMeters
	}
	return meters / types.MetersPerKilometer
}

// dailySample is one upstream forecast row with its local timestamp.
type dailySample struct {
	at    time.Time
	entry ForecastEntry
}

func mapDailyResponse(apiResponse *openmeteo.ForecastAPIResponse, logger *slog.Logger) ([]dailySample, error) {
	if apiResponse == nil || apiResponse.Daily == nil {
		return nil, fmt.Errorf("%w: missing daily block", ErrMalformedResponse)
	}
	d := apiResponse.Daily

	n := len(d.Time)
	if len(d.WeatherCode) != n || len(d.Temperature2MMax) != n || len(d.Temperature2MMin) != n {
		return nil, fmt.Errorf("%w: daily arrays differ in length (time=%d weather_code=%d max=%d min=%d)",
			ErrMalformedResponse, n, len(d.WeatherCode), len(d.Temperature2MMax), len(d.Temperature2MMin))
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: no forecast days", ErrMalformedResponse)
	}

	location := responseLocation(apiResponse)

	samples := make([]dailySample, 0, n)
	for i, raw := range d.Time {
		at, err := parseSampleTime(raw, location)
		if err != nil {
			logger.Warn("skipping forecast sample with unparseable time", "time", raw, "error", err)
			continue
		}
		if d.WeatherCode[i] == nil || d.Temperature2MMax[i] == nil || d.Temperature2MMin[i] == nil {
			logger.Warn("skipping forecast sample with null values", "time", raw)
			continue
		}

		maxTemp := *d.Temperature2MMax[i]
		minTemp := *d.Temperature2MMin[i]
		samples = append(samples, dailySample{
			at: at,
			entry: ForecastEntry{
				EpochSeconds: at.Unix(),
				MeanTemp:     (maxTemp + minTemp) / 2,
				MaxTemp:      maxTemp,
				MinTemp:      minTemp,
				Condition:    types.Classify(*d.WeatherCode[i]),
			},
		})
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no usable forecast samples", ErrMalformedResponse)
	}

	return samples, nil
}

// responseLocation returns the zone the response timestamps are expressed in.
func responseLocation(apiResponse *openmeteo.ForecastAPIResponse) *time.Location {
	if apiResponse.Timezone != "" {
		if loc, err := time.LoadLocation(apiResponse.Timezone); err == nil {
			return loc
		}
	}
	name := apiResponse.TimezoneAbbreviation
	if name == "" {
		name = "UTC"
	}
	return time.FixedZone(name, apiResponse.UtcOffsetSeconds)
}

func parseSampleTime(value string, location *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(dateTimeLayout, value, location); err == nil {
		return t, nil
	}
	return time.ParseInLocation(dateLayout, value, location)
}

// selectDailyEntries keeps one sample per local calendar date, preferring the
// sample closest to 12:00, and returns at most dayCount entries by ascending date.
func selectDailyEntries(samples []dailySample, dayCount int) Forecast {
	byDate := make(map[string]dailySample, len(samples))
	dates := make([]string, 0, len(samples))

	for _, sample := range samples {
		key := sample.at.Format(dateLayout)
		existing, ok := byDate[key]
		if !ok {
			byDate[key] = sample
			dates = append(dates, key)
			continue
		}
		if distanceFromNoon(sample.at) < distanceFromNoon(existing.at) {
			byDate[key] = sample
		}
	}

	// ISO dates sort lexically in chronological order
	sort.Strings(dates)

	if len(dates) > dayCount {
		dates = dates[:dayCount]
	}

	forecast := make(Forecast, 0, len(dates))
	for _, key := range dates {
		forecast = append(forecast, byDate[key].entry)
	}
	return forecast
}

func distanceFromNoon(t time.Time) time.Duration {
	noon := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
	d := t.Sub(noon)
	if d < 0 {
		return -d
	}
	return d
}
