package types

// FallbackGlyph is shown for icon ids missing from the table.
const FallbackGlyph = "🌡️"

// Day and night variants share a glyph except for clear sky.
var iconGlyphs = map[string]string{
	"01d": "☀️",
	"01n": "🌙",
	"02d": "🌤️",
	"02n": "🌤️",
	"03d": "☁️",
	"03n": "☁️",
	"04d": "☁️",
	"04n": "☁️",
	"09d": "🌧️",
	"09n": "🌧️",
	"10d": "🌧️",
	"10n": "🌧️",
	"11d": "⛈️",
	"11n": "⛈️",
	"13d": "❄️",
	"13n": "❄️",
	"50d": "🌫️",
	"50n": "🌫️",
}

// ResolveIcon returns the display glyph for an icon id.
func ResolveIcon(iconID string) string {
	if glyph, ok := iconGlyphs[iconID]; ok {
		return glyph
	}
	return FallbackGlyph
}
