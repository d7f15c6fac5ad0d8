package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Session endpoints
	sessions := app.router.Group("/sessions")
	sessions.POST("", app.handleStartSession)
	sessions.GET("/:id", app.handleGetSession)
	sessions.DELETE("/:id", app.handleDeleteSession)
	sessions.PUT("/:id/location", app.handleMoveSession)
	sessions.POST("/:id/place", app.handleSelectPlace)
	sessions.POST("/:id/chat", app.handleChat)
	sessions.PUT("/:id/voice", app.handleSetVoice)
	sessions.GET("/:id/weather", app.handleSessionWeather)
	sessions.GET("/:id/nearby", app.handleSessionNearby)

	// Place endpoints
	app.router.GET("/places/search", app.handleSearchPlaces)
	app.router.GET("/places/reverse", app.handleReversePlace)

	// Weather endpoints
	app.router.GET("/weather", app.handleGetWeather)

	// Assistant endpoints
	app.router.GET("/assistant/quick-prompts", app.handleQuickPrompts)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
