package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"pixel-weather/internal/lookup"
	"pixel-weather/internal/types"

	"github.com/gin-gonic/gin"
)

// GetWeatherByCityInput defines the query parameters for the city weather endpoint
type GetWeatherByCityInput struct {
	City  string `form:"city" binding:"required"`               // Place name to geocode
	Units string `form:"units"`                                 // metric or imperial; stored preference when empty
	Days  int    `form:"days" binding:"omitempty,min=1,max=16"` // Forecast length
}

// GetWeatherByCoordinatesInput defines the query parameters for the coordinate weather endpoint
type GetWeatherByCoordinatesInput struct {
	Latitude  *float64 `form:"latitude" binding:"required"`           // Latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"required"`          // Longitude in decimal degrees
	Units     string   `form:"units"`                                 // metric or imperial; stored preference when empty
	Days      int      `form:"days" binding:"omitempty,min=1,max=16"` // Forecast length
}

// handleGetWeatherByCity godoc
// @Summary Get weather for a city
// @Description Geocode a place name and return its current conditions and daily forecast
// @Tags weather
// @Produce json
// @Param city query string true "Place name" example(Paris)
// @Param units query string false "Unit system" Enums(metric, imperial)
// @Param days query int false "Forecast days" minimum(1) maximum(16) default(5)
// @Success 200 {object} lookup.Result
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /weather [get]
func (app *App) handleGetWeatherByCity(c *gin.Context) {
	var input GetWeatherByCityInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	units, err := app.resolveUnits(c.Request.Context(), input.Units)
	if err != nil {
		app.abortWithError(c, err)
		return
	}

	result, err := app.lookupService.LookupByName(c.Request.Context(), strings.TrimSpace(input.City), units, app.days(input.Days))
	if err != nil {
		app.abortWithLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleGetWeatherByCoordinates godoc
// @Summary Get weather for coordinates
// @Description Return current conditions and daily forecast for a position, named by reverse geocoding when possible
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(40.7128)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-74.0060)
// @Param units query string false "Unit system" Enums(metric, imperial)
// @Param days query int false "Forecast days" minimum(1) maximum(16) default(5)
// @Success 200 {object} lookup.Result
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /weather/coordinates [get]
func (app *App) handleGetWeatherByCoordinates(c *gin.Context) {
	var input GetWeatherByCoordinatesInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	units, err := app.resolveUnits(c.Request.Context(), input.Units)
	if err != nil {
		app.abortWithError(c, err)
		return
	}

	result, err := app.lookupService.LookupByCoords(c.Request.Context(), *input.Latitude, *input.Longitude, units, app.days(input.Days))
	if err != nil {
		app.abortWithLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// resolveUnits validates an explicit unit system or falls back to the stored preference
func (app *App) resolveUnits(ctx context.Context, raw string) (types.UnitSystem, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw != "" {
		units := types.UnitSystem(raw)
		if !units.Valid() {
			return "", fmt.Errorf("%w: %q", lookup.ErrInvalidUnits, raw)
		}
		return units, nil
	}

	prefs, err := app.preferences.Load(ctx)
	if err != nil {
		app.logger.Warn("using default units", "error", err)
	}
	return prefs.Units, nil
}

func (app *App) days(requested int) int {
	if requested > 0 {
		return requested
	}
	return app.forecastDays
}
