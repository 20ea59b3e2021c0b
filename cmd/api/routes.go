package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Weather endpoints
	app.router.GET("/weather", app.handleGetWeatherByCity)
	app.router.GET("/weather/coordinates", app.handleGetWeatherByCoordinates)

	// Preference endpoints
	app.router.GET("/preferences", app.handleGetPreferences)
	app.router.PUT("/preferences", app.handleUpdatePreferences)

	// Saved city endpoints
	app.router.GET("/cities", app.handleListCities)
	app.router.POST("/cities", app.handleAddCity)
	app.router.DELETE("/cities/:name", app.handleRemoveCity)

	// Prometheus metrics
	if app.metricsHandler != nil {
		app.router.GET("/metrics", gin.WrapH(app.metricsHandler))
	}

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
