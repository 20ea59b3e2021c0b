package types

// WeatherCode represents a WMO weather code
type WeatherCode int

// Weather code constants
const (
	ClearSky                     WeatherCode = 0
	MainlyClear                  WeatherCode = 1
	PartlyCloudy                 WeatherCode = 2
	Overcast                     WeatherCode = 3
	Fog                          WeatherCode = 45
	DepositingRimeFog            WeatherCode = 48
	DrizzleLight                 WeatherCode = 51
	DrizzleModerate              WeatherCode = 53
	DrizzleDense                 WeatherCode = 55
	RainSlight                   WeatherCode = 61
	RainModerate                 WeatherCode = 63
	RainHeavy                    WeatherCode = 65
	SnowFallSlight               WeatherCode = 71
	SnowFallModerate             WeatherCode = 73
	SnowFallHeavy                WeatherCode = 75
	SnowGrains                   WeatherCode = 77
	RainShowersSlight            WeatherCode = 80
	RainShowersModerate          WeatherCode = 81
	RainShowersViolent           WeatherCode = 82
	SnowShowersSlight            WeatherCode = 85
	SnowShowersHeavy             WeatherCode = 86
	ThunderstormSlightOrModerate WeatherCode = 95
	ThunderstormWithSlightHail   WeatherCode = 96
	ThunderstormWithHeavyHail    WeatherCode = 99
)

// Category is the coarse classification shown next to the description.
type Category string

const (
	CategoryClear        Category = "Clear"
	CategoryPartlyCloudy Category = "Partly cloudy"
	CategoryOvercast     Category = "Overcast"
	CategoryFoggy        Category = "Foggy"
	CategoryDrizzle      Category = "Drizzle"
	CategoryRain         Category = "Rain"
	CategoryRainShowers  Category = "Rain showers"
	CategorySnow         Category = "Snow"
	CategoryThunderstorm Category = "Thunderstorm"
	CategoryUnknown      Category = "Unknown"
)

// Icon ids follow the day/night naming used by most weather icon sets.
const (
	IconClearDay     = "01d"
	IconFewClouds    = "02d"
	IconBrokenClouds = "04d"
	IconShowerRain   = "09d"
	IconRain         = "10d"
	IconThunderstorm = "11d"
	IconSnow         = "13d"
	IconMist         = "50d"
)

const UnknownDescription = "Unknown conditions"

// Condition is the normalized form of a weather code.
type Condition struct {
	Category    Category `json:"category"`
	Description string   `json:"description"`
	IconID      string   `json:"icon"`
}

type classification struct {
	category    Category
	description string
	icon        string
}

var classifications = map[WeatherCode]classification{
	ClearSky:                     {CategoryClear, "Clear sky", IconClearDay},
	MainlyClear:                  {CategoryPartlyCloudy, "Mainly clear", IconFewClouds},
	PartlyCloudy:                 {CategoryPartlyCloudy, "Partly cloudy", IconFewClouds},
	Overcast:                     {CategoryOvercast, "Overcast", IconBrokenClouds},
	Fog:                          {CategoryFoggy, "Foggy", IconMist},
	DepositingRimeFog:            {CategoryFoggy, "Depositing rime fog", IconMist},
	DrizzleLight:                 {CategoryDrizzle, "Light drizzle", IconShowerRain},
	DrizzleModerate:              {CategoryDrizzle, "Moderate drizzle", IconShowerRain},
	DrizzleDense:                 {CategoryDrizzle, "Dense drizzle", IconShowerRain},
	RainSlight:                   {CategoryRain, "Slight rain", IconRain},
	RainModerate:                 {CategoryRain, "Moderate rain", IconRain},
	RainHeavy:                    {CategoryRain, "Heavy rain", IconRain},
	SnowFallSlight:               {CategorySnow, "Slight snow", IconSnow},
	SnowFallModerate:             {CategorySnow, "Moderate snow", IconSnow},
	SnowFallHeavy:                {CategorySnow, "Heavy snow", IconSnow},
	SnowGrains:                   {CategorySnow, "Snow grains", IconSnow},
	RainShowersSlight:            {CategoryRainShowers, "Slight rain showers", IconRain},
	RainShowersModerate:          {CategoryRainShowers, "Moderate rain showers", IconRain},
	RainShowersViolent:           {CategoryRainShowers, "Violent rain showers", IconRain},
	SnowShowersSlight:            {CategorySnow, "Slight snow showers", IconSnow},
	SnowShowersHeavy:             {CategorySnow, "Heavy snow showers", IconSnow},
	ThunderstormSlightOrModerate: {CategoryThunderstorm, "Thunderstorm", IconThunderstorm},
	ThunderstormWithSlightHail:   {CategoryThunderstorm, "Thunderstorm with slight hail", IconThunderstorm},
	ThunderstormWithHeavyHail:    {CategoryThunderstorm, "Thunderstorm with heavy hail", IconThunderstorm},
}

// Classify maps a WMO weather code to its category, description and icon id.
// Codes outside the table classify as CategoryUnknown.
func Classify(code int) Condition {
	c, ok := classifications[WeatherCode(code)]
	if !ok {
		return Condition{
			Category:    CategoryUnknown,
			Description: UnknownDescription,
			IconID:      IconBrokenClouds,
		}
	}
	return Condition{
		Category:    c.category,
		Description: c.description,
		IconID:      c.icon,
	}
}

// Categories returns every category Classify can produce.
func Categories() []Category {
	return []Category{
		CategoryClear,
		CategoryPartlyCloudy,
		CategoryOvercast,
		CategoryFoggy,
		CategoryDrizzle,
		CategoryRain,
		CategoryRainShowers,
		CategorySnow,
		CategoryThunderstorm,
		CategoryUnknown,
	}
}

// KnownCodes returns the weather codes present in the classification table.
func KnownCodes() []WeatherCode {
	codes := make([]WeatherCode, 0, len(classifications))
	for code := range classifications {
		codes = append(codes, code)
	}
	return codes
}
