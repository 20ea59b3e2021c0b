package types

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		code     int
		category Category
		desc     string
		icon     string
	}{
		{0, CategoryClear, "Clear sky", "01d"},
		{1, CategoryPartlyCloudy, "Mainly clear", "02d"},
		{2, CategoryPartlyCloudy, "Partly cloudy", "02d"},
		{3, CategoryOvercast, "Overcast", "04d"},
		{45, CategoryFoggy, "Foggy", "50d"},
		{48, CategoryFoggy, "Depositing rime fog", "50d"},
		{53, CategoryDrizzle, "Moderate drizzle", "09d"},
		{65, CategoryRain, "Heavy rain", "10d"},
		{77, CategorySnow, "Snow grains", "13d"},
		{82, CategoryRainShowers, "Violent rain showers", "10d"},
		{86, CategorySnow, "Heavy snow showers", "13d"},
		{99, CategoryThunderstorm, "Thunderstorm with heavy hail", "11d"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := Classify(tt.code)
			if got.Category != tt.category {
				t.Errorf("Classify(%d).Category = %q, want %q", tt.code, got.Category, tt.category)
			}
			if got.Description != tt.desc {
				t.Errorf("Classify(%d).Description = %q, want %q", tt.code, got.Description, tt.desc)
			}
			if got.IconID != tt.icon {
				t.Errorf("Classify(%d).IconID = %q, want %q", tt.code, got.IconID, tt.icon)
			}
		})
	}
}

func TestClassify_KnownCodesUseFixedCategories(t *testing.T) {
	allowed := make(map[Category]bool)
	for _, c := range Categories() {
		allowed[c] = true
	}

	for _, code := range KnownCodes() {
		got := Classify(int(code))
		if !allowed[got.Category] {
			t.Errorf("Classify(%d) returned category %q outside the fixed set", code, got.Category)
		}
		if got.Category == CategoryUnknown {
			t.Errorf("Classify(%d) returned Unknown for a known code", code)
		}
	}
}

func TestClassify_UnknownCodes(t *testing.T) {
	for _, code := range []int{-1, 4, 44, 56, 57, 66, 67, 100, 1 << 20} {
		got := Classify(code)
		if got.Category != CategoryUnknown {
			t.Errorf("Classify(%d).Category = %q, want %q", code, got.Category, CategoryUnknown)
		}
		if got.Description != UnknownDescription {
			t.Errorf("Classify(%d).Description = %q, want %q", code, got.Description, UnknownDescription)
		}
		if got.IconID != IconBrokenClouds {
			t.Errorf("Classify(%d).IconID = %q, want %q", code, got.IconID, IconBrokenClouds)
		}
	}
}

func TestResolveIcon(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"01d", "☀️"},
		{"01n", "🌙"},
		{"02n", "🌤️"},
		{"04d", "☁️"},
		{"10n", "🌧️"},
		{"11d", "⛈️"},
		{"13d", "❄️"},
		{"50n", "🌫️"},
		{"", FallbackGlyph},
		{"99x", FallbackGlyph},
		{"01D", FallbackGlyph},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := ResolveIcon(tt.id); got != tt.want {
				t.Errorf("ResolveIcon(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestClassify_IconsResolve(t *testing.T) {
	for _, code := range KnownCodes() {
		icon := Classify(int(code)).IconID
		if ResolveIcon(icon) == FallbackGlyph {
			t.Errorf("icon %q for code %d has no glyph", icon, code)
		}
	}
}

func TestParseUnitSystem(t *testing.T) {
	tests := []struct {
		input string
		want  UnitSystem
	}{
		{"metric", Metric},
		{"imperial", Imperial},
		{" Imperial ", Imperial},
		{"", Metric},
		{"kelvin", Metric},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseUnitSystem(tt.input); got != tt.want {
				t.Errorf("ParseUnitSystem(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestUnitSystem_UpstreamUnits(t *testing.T) {
	if Metric.TemperatureUnit() != "celsius" || Metric.WindSpeedUnit() != "ms" {
		t.Errorf("metric upstream units = %s/%s", Metric.TemperatureUnit(), Metric.WindSpeedUnit())
	}
	if Imperial.TemperatureUnit() != "fahrenheit" || Imperial.WindSpeedUnit() != "mph" {
		t.Errorf("imperial upstream units = %s/%s", Imperial.TemperatureUnit(), Imperial.WindSpeedUnit())
	}
	if UnitSystem("kelvin").Valid() {
		t.Error("kelvin should not be a valid unit system")
	}
}
