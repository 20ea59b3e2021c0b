package main

import (
	"errors"
	"net/http"

	"pixel-weather/internal/store"

	"github.com/gin-gonic/gin"
)

// CitiesResponse lists saved cities in display order
type CitiesResponse struct {
	Cities []string `json:"cities" example:"Paris,Tokyo"`
}

// AddCityInput names the city to save
type AddCityInput struct {
	Name string `json:"name" binding:"required" example:"Paris"`
}

// handleListCities godoc
// @Summary List saved cities
// @Tags cities
// @Produce json
// @Success 200 {object} CitiesResponse
// @Failure 500 {object} ErrorResponse
// @Router /cities [get]
func (app *App) handleListCities(c *gin.Context) {
	cities, err := app.cities.List(c.Request.Context())
	if err != nil {
		app.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CitiesResponse{Cities: cities})
}

// handleAddCity godoc
// @Summary Save a city
// @Description Append a city to the saved list. Names already saved are rejected.
// @Tags cities
// @Accept json
// @Produce json
// @Param city body AddCityInput true "City to save"
// @Success 201 {object} CitiesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /cities [post]
func (app *App) handleAddCity(c *gin.Context) {
	var input AddCityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	cities, err := app.cities.Add(c.Request.Context(), input.Name)
	if err != nil {
		if errors.Is(err, store.ErrCityExists) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		app.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CitiesResponse{Cities: cities})
}

// handleRemoveCity godoc
// @Summary Remove a saved city
// @Description Removing a city that is not saved leaves the list unchanged
// @Tags cities
// @Produce json
// @Param name path string true "City name"
// @Success 200 {object} CitiesResponse
// @Failure 500 {object} ErrorResponse
// @Router /cities/{name} [delete]
func (app *App) handleRemoveCity(c *gin.Context) {
	cities, err := app.cities.Remove(c.Request.Context(), c.Param("name"))
	if err != nil {
		app.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CitiesResponse{Cities: cities})
}
