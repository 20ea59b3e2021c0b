package lookup

import (
	"context"
	"errors"

	"pixel-weather/internal/geolocation"
	"pixel-weather/internal/location"
	"pixel-weather/internal/weather"
)

const (
	MsgCityNotFound        = "City not found"
	MsgLocationUnavailable = "Location service unavailable. Please try again later."
	MsgWeatherUnavailable  = "Weather data not available"
	MsgGeolocationDenied   = "Unable to access your geolocation. Please allow location access."
	MsgInvalidCoordinates  = "Invalid coordinates"
	MsgCancelled           = "Request cancelled"
	MsgGeneric             = "Failed to fetch weather data"
)

// Message turns a lookup error into the single line shown to the user.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, location.ErrNotFound):
		return MsgCityNotFound
	case errors.Is(err, location.ErrServiceUnavailable):
		return MsgLocationUnavailable
	case errors.Is(err, weather.ErrUpstream), errors.Is(err, weather.ErrMalformedResponse):
		return MsgWeatherUnavailable
	case errors.Is(err, geolocation.ErrPermissionDenied):
		return MsgGeolocationDenied
	case errors.Is(err, location.ErrInvalidLatitude), errors.Is(err, location.ErrInvalidLongitude):
		return MsgInvalidCoordinates
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return MsgCancelled
	default:
		return MsgGeneric
	}
}
