package main

import (
	"bytes"
	"testing"
	"time"

	"pixel-weather/internal/lookup"
	"pixel-weather/internal/store"
	"pixel-weather/internal/types"
	"pixel-weather/internal/weather"

	"github.com/stretchr/testify/assert"
)

func TestFormatters(t *testing.T) {
	assert.Equal(t, "21°C", formatTemperature(20.6, types.Metric))
	assert.Equal(t, "-2°F", formatTemperature(-2.5, types.Imperial))
	assert.Equal(t, "0°C", formatTemperature(-0.4, types.Metric))
	assert.Equal(t, "4.2 m/s", formatWind(4.21, types.Metric))
	assert.Equal(t, "12.0 mph", formatWind(12, types.Imperial))
	assert.Equal(t, "24.1 km", formatVisibility(24.14))
	assert.Equal(t, "10.0 km", formatVisibility(weather.DefaultVisibilityKm))
}

func TestDayLabel(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatalf("LoadLocation() error = %v", err)
	}

	// Local midnight in Paris is still the previous day in UTC
	midnight := time.Date(2025, 1, 15, 0, 0, 0, 0, paris).Unix()
	assert.Equal(t, "Wed, Jan 15", dayLabel(midnight, paris))
	assert.Equal(t, "Tue, Jan 14", dayLabel(midnight, time.UTC))
}

func TestZoneFor(t *testing.T) {
	assert.Equal(t, time.Local, zoneFor(""))
	assert.Equal(t, time.Local, zoneFor(lookup.AutoTimezone))
	assert.Equal(t, time.Local, zoneFor("Not/AZone"))
	assert.Equal(t, "Asia/Tokyo", zoneFor("Asia/Tokyo").String())
}

func TestRenderResult(t *testing.T) {
	result := &lookup.Result{
		Location: types.Location{DisplayName: "Paris", Country: "France", Timezone: "UTC"},
		Units:    types.Metric,
		Current: &weather.CurrentConditions{
			PlaceName:            "Paris",
			Country:              "France",
			Units:                types.Metric,
			Temperature:          3.4,
			FeelsLikeTemperature: 3.4,
			HumidityPercent:      81,
			PressureHPa:          1012.3,
			WindSpeed:            4.2,
			VisibilityKm:         24.14,
			Condition:            types.Classify(61),
		},
		Forecast: weather.Forecast{
			{EpochSeconds: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC).Unix(), MeanTemp: 2.6, MaxTemp: 6.4, MinTemp: -1.2, Condition: types.Classify(0)},
		},
	}

	var buf bytes.Buffer
	renderResult(&buf, result)
	out := buf.String()

	assert.Contains(t, out, "🌧️  Paris, France")
	assert.Contains(t, out, "Slight rain, 3°C (feels like 3°C)")
	assert.Contains(t, out, "Humidity 81%  Pressure 1012 hPa  Wind 4.2 m/s  Visibility 24.1 km")
	assert.Contains(t, out, "Wed, Jan 15")
	assert.Contains(t, out, "☀️")
	assert.Contains(t, out, "3°C")
	assert.Contains(t, out, "H: 6°C  L: -1°C")
}

func TestRenderResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	renderResult(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestRenderPreferencesAndCities(t *testing.T) {
	var buf bytes.Buffer
	renderPreferences(&buf, store.Preferences{Units: types.Imperial, DarkMode: false})
	assert.Equal(t, "units: imperial\ntheme: light\n", buf.String())

	buf.Reset()
	renderCities(&buf, nil)
	assert.Equal(t, "no saved cities\n", buf.String())

	buf.Reset()
	renderCities(&buf, []string{"Paris", "Tokyo"})
	assert.Equal(t, "Paris\nTokyo\n", buf.String())
}
