package types

import "strings"

// UnitSystem selects the display convention applied at the fetch boundary.
type UnitSystem string

const (
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
)

const (
	MetersPerKilometer = 1000.0
	FeetToMeters       = 0.3048
)

// ParseUnitSystem returns the unit system for s, defaulting to Metric for
// anything it does not recognise.
func ParseUnitSystem(s string) UnitSystem {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Imperial):
		return Imperial
	default:
		return Metric
	}
}

// Valid reports whether u is one of the known unit systems.
func (u UnitSystem) Valid() bool {
	return u == Metric || u == Imperial
}

// TemperatureUnit is the Open-Meteo temperature_unit value.
func (u UnitSystem) TemperatureUnit() string {
	if u == Imperial {
		return "fahrenheit"
	}
	return "celsius"
}

// WindSpeedUnit is the Open-Meteo wind_speed_unit value.
func (u UnitSystem) WindSpeedUnit() string {
	if u == Imperial {
		return "mph"
	}
	return "ms"
}

func (u UnitSystem) TemperatureSymbol() string {
	if u == Imperial {
		return "°F"
	}
	return "°C"
}

func (u UnitSystem) WindSpeedSymbol() string {
	if u == Imperial {
		return "mph"
	}
	return "m/s"
}
