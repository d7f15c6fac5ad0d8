package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"local-guide/internal/types"
)

// SearchPlacesInput defines the query parameters for place search
type SearchPlacesInput struct {
	Query     string   `form:"q" binding:"required"` // Free-text place query
	Latitude  *float64 `form:"latitude"`             // Optional proximity bias
	Longitude *float64 `form:"longitude"`            // Optional proximity bias
}

// CoordsInput defines latitude and longitude query parameters
type CoordsInput struct {
	Latitude  *float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
}

// Coords returns the bound coordinate. Only valid after a successful bind.
func (in CoordsInput) Coords() types.Coords {
	return types.NewCoords(*in.Latitude, *in.Longitude)
}

// handleSearchPlaces godoc
// @Summary Search places
// @Description Forward geocode a free-text query, optionally biased towards a coordinate
// @Tags places
// @Produce json
// @Param q query string true "Place query" example(Lisbon)
// @Param latitude query number false "Proximity latitude" minimum(-90) maximum(90)
// @Param longitude query number false "Proximity longitude" minimum(-180) maximum(180)
// @Success 200 {array} places.Place
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /places/search [get]
func (app *App) handleSearchPlaces(c *gin.Context) {
	var input SearchPlacesInput
	if err := c.ShouldBindQuery(&input); err != nil {
		badRequest(c, err)
		return
	}

	var near *types.Coords
	if input.Latitude != nil && input.Longitude != nil {
		coords := types.NewCoords(*input.Latitude, *input.Longitude)
		if err := coords.Validate(); err != nil {
			badRequest(c, err)
			return
		}
		near = &coords
	}

	results, err := app.placesService.Search(c.Request.Context(), input.Query, near)
	if err != nil {
		app.respondError(c, err, http.StatusBadGateway, "failed to search places", "query", input.Query)
		return
	}

	c.JSON(http.StatusOK, results)
}

// handleReversePlace godoc
// @Summary Reverse geocode
// @Description Find the place at a coordinate
// @Tags places
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(38.7223)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-9.1393)
// @Success 200 {object} places.Place
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /places/reverse [get]
func (app *App) handleReversePlace(c *gin.Context) {
	var input CoordsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		badRequest(c, err)
		return
	}

	coords := input.Coords()
	place, err := app.placesService.Reverse(c.Request.Context(), coords)
	if err != nil {
		app.respondError(c, err, http.StatusBadGateway, "failed to reverse geocode", "coords", coords.String())
		return
	}

	c.JSON(http.StatusOK, place)
}
