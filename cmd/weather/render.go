package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"pixel-weather/internal/lookup"
	"pixel-weather/internal/store"
	"pixel-weather/internal/types"
)

const dayLabelLayout = "Mon, Jan 2"

// roundHalfUp rounds .5 towards positive infinity, so -2.5 shows as -2.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func formatTemperature(v float64, units types.UnitSystem) string {
	return fmt.Sprintf("%d%s", roundHalfUp(v), units.TemperatureSymbol())
}

func formatWind(v float64, units types.UnitSystem) string {
	return fmt.Sprintf("%.1f %s", v, units.WindSpeedSymbol())
}

func formatVisibility(km float64) string {
	return fmt.Sprintf("%.1f km", km)
}

// dayLabel formats a forecast timestamp in the forecast location's zone.
func dayLabel(epochSeconds int64, zone *time.Location) string {
	return time.Unix(epochSeconds, 0).In(zone).Format(dayLabelLayout)
}

func zoneFor(name string) *time.Location {
	if name == "" || name == lookup.AutoTimezone {
		return time.Local
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.Local
}

func renderResult(w io.Writer, r *lookup.Result) {
	if r == nil || r.Current == nil {
		return
	}
	c := r.Current
	units := r.Units

	place := c.PlaceName
	if c.Country != "" {
		place += ", " + c.Country
	}

	fmt.Fprintf(w, "%s  %s\n", types.ResolveIcon(c.IconID), place)
	fmt.Fprintf(w, "   %s, %s (feels like %s)\n",
		c.Description,
		formatTemperature(c.Temperature, units),
		formatTemperature(c.FeelsLikeTemperature, units),
	)
	fmt.Fprintf(w, "   Humidity %d%%  Pressure %d hPa  Wind %s  Visibility %s\n",
		roundHalfUp(c.HumidityPercent),
		roundHalfUp(c.PressureHPa),
		formatWind(c.WindSpeed, units),
		formatVisibility(c.VisibilityKm),
	)

	if len(r.Forecast) == 0 {
		return
	}

	zone := zoneFor(r.Location.Timezone)
	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, day := range r.Forecast {
		fmt.Fprintf(tw, "   %s\t%s\t%s\t%s\tH: %s  L: %s\n",
			dayLabel(day.EpochSeconds, zone),
			types.ResolveIcon(day.IconID),
			day.Description,
			formatTemperature(day.MeanTemp, units),
			formatTemperature(day.MaxTemp, units),
			formatTemperature(day.MinTemp, units),
		)
	}
	tw.Flush()
}

func renderPreferences(w io.Writer, prefs store.Preferences) {
	theme := "light"
	if prefs.DarkMode {
		theme = "dark"
	}
	fmt.Fprintf(w, "units: %s\ntheme: %s\n", prefs.Units, theme)
}

func renderCities(w io.Writer, cities []string) {
	if len(cities) == 0 {
		fmt.Fprintln(w, "no saved cities")
		return
	}
	fmt.Fprintln(w, strings.Join(cities, "\n"))
}
