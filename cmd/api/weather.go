package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleGetWeather godoc
// @Summary Get weather
// @Description Current conditions and a daily outlook for a coordinate, in the coordinate's local timezone
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(40.7142)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-74.006)
// @Success 200 {object} weather.Report
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /weather [get]
func (app *App) handleGetWeather(c *gin.Context) {
	var input CoordsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		badRequest(c, err)
		return
	}

	coords := input.Coords()
	report, err := app.weatherService.GetReport(c.Request.Context(), coords)
	if err != nil {
		app.respondError(c, err, http.StatusBadGateway, "failed to get weather", "coords", coords.String())
		return
	}

	c.JSON(http.StatusOK, report)
}
