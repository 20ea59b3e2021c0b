package main

import (
	"errors"
	"net/http"

	"pixel-weather/internal/location"
	"pixel-weather/internal/lookup"
	"pixel-weather/internal/store"
	"pixel-weather/internal/weather"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error" example:"City not found"`
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, location.ErrInvalidLatitude),
		errors.Is(err, location.ErrInvalidLongitude),
		errors.Is(err, lookup.ErrInvalidUnits),
		errors.Is(err, store.ErrEmptyCityName):
		return http.StatusBadRequest
	case errors.Is(err, location.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrCityExists):
		return http.StatusConflict
	case errors.Is(err, location.ErrServiceUnavailable),
		errors.Is(err, weather.ErrUpstream),
		errors.Is(err, weather.ErrMalformedResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// abortWithLookupError writes the user-facing message for a failed lookup
func (app *App) abortWithLookupError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		app.logger.Error("lookup failed", "path", c.Request.URL.Path, "error", err)
	}
	c.JSON(status, ErrorResponse{Error: lookup.Message(err)})
}

// abortWithError writes err.Error() for validation and storage failures
func (app *App) abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		app.logger.Error("request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(status, ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
