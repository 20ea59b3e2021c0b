package main

import (
	"fmt"
	"net/http"

	"pixel-weather/internal/lookup"
	"pixel-weather/internal/types"

	"github.com/gin-gonic/gin"
)

// UpdatePreferencesInput is a partial update; omitted fields keep their value
type UpdatePreferencesInput struct {
	Units      *string `json:"units" example:"imperial"`
	IsDarkMode *bool   `json:"isDarkMode" example:"false"`
}

// handleGetPreferences godoc
// @Summary Get preferences
// @Description Return the stored unit system and theme flag
// @Tags preferences
// @Produce json
// @Success 200 {object} store.Preferences
// @Failure 500 {object} ErrorResponse
// @Router /preferences [get]
func (app *App) handleGetPreferences(c *gin.Context) {
	prefs, err := app.preferences.Load(c.Request.Context())
	if err != nil {
		app.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// handleUpdatePreferences godoc
// @Summary Update preferences
// @Description Change the unit system and/or theme flag
// @Tags preferences
// @Accept json
// @Produce json
// @Param preferences body UpdatePreferencesInput true "Fields to change"
// @Success 200 {object} store.Preferences
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /preferences [put]
func (app *App) handleUpdatePreferences(c *gin.Context) {
	var input UpdatePreferencesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	prefs, err := app.preferences.Load(c.Request.Context())
	if err != nil {
		app.abortWithError(c, err)
		return
	}

	if input.Units != nil {
		units := types.UnitSystem(*input.Units)
		if !units.Valid() {
			app.abortWithError(c, fmt.Errorf("%w: %q", lookup.ErrInvalidUnits, *input.Units))
			return
		}
		prefs.Units = units
	}
	if input.IsDarkMode != nil {
		prefs.DarkMode = *input.IsDarkMode
	}

	if err := app.preferences.Save(c.Request.Context(), prefs); err != nil {
		app.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}
