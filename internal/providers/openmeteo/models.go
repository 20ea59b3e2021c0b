package openmeteo

// GeocodingAPIResponse is the body of /v1/search. Results is absent when
// nothing matched.
type GeocodingAPIResponse struct {
	Results          []GeocodingResult `json:"results"`
	GenerationtimeMs float64           `json:"generationtime_ms"`
}

type GeocodingResult struct {
	Id          int     `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Elevation   float64 `json:"elevation"`
	FeatureCode string  `json:"feature_code"`
	CountryCode string  `json:"country_code"`
	Country     string  `json:"country"`
	Admin1      string  `json:"admin1"`
	Timezone    string  `json:"timezone"`
	Population  int     `json:"population"`
}

// ForecastAPIResponse covers both the current and the daily variants of
// /v1/forecast. Measurement fields are pointers so that absent values can be
// told apart from zero.
type ForecastAPIResponse struct {
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	GenerationtimeMs     float64 `json:"generationtime_ms"`
	UtcOffsetSeconds     int     `json:"utc_offset_seconds"`
	Timezone             string  `json:"timezone"`
	TimezoneAbbreviation string  `json:"timezone_abbreviation"`
	Elevation            float64 `json:"elevation"`

	CurrentUnits *CurrentUnits `json:"current_units,omitempty"`
	Current      *Current      `json:"current,omitempty"`

	DailyUnits *DailyUnits `json:"daily_units,omitempty"`
	Daily      *Daily      `json:"daily,omitempty"`
}

type CurrentUnits struct {
	Time               string `json:"time"`
	Temperature2M      string `json:"temperature_2m"`
	RelativeHumidity2M string `json:"relative_humidity_2m"`
	WeatherCode        string `json:"weather_code"`
	WindSpeed10M       string `json:"wind_speed_10m"`
	Visibility         string `json:"visibility"`
	SurfacePressure    string `json:"surface_pressure"`
}

type Current struct {
	Time               string   `json:"time"`
	Interval           int      `json:"interval"`
	Temperature2M      *float64 `json:"temperature_2m"`
	RelativeHumidity2M *float64 `json:"relative_humidity_2m"`
	WeatherCode        *int     `json:"weather_code"`
	WindSpeed10M       *float64 `json:"wind_speed_10m"`
	Visibility         *float64 `json:"visibility"`
	SurfacePressure    *float64 `json:"surface_pressure"`
}

type DailyUnits struct {
	Time             string `json:"time"`
	WeatherCode      string `json:"weather_code"`
	Temperature2MMax string `json:"temperature_2m_max"`
	Temperature2MMin string `json:"temperature_2m_min"`
}

type Daily struct {
	Time             []string   `json:"time"`
	WeatherCode      []*int     `json:"weather_code"`
	Temperature2MMax []*float64 `json:"temperature_2m_max"`
	Temperature2MMin []*float64 `json:"temperature_2m_min"`
}
