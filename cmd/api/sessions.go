package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"local-guide/internal/assistant"
	"local-guide/internal/location"
	"local-guide/internal/places"
	"local-guide/internal/types"
)

// MoveSessionInput is the body of a coordinate change
type MoveSessionInput struct {
	Latitude  *float64 `json:"latitude" binding:"required" example:"38.7223"`
	Longitude *float64 `json:"longitude" binding:"required" example:"-9.1393"`
}

// ChatInput is a single user message
type ChatInput struct {
	Message string `json:"message" binding:"required" example:"Best restaurants in Lisbon"`
	// Speak requests speakable text even when session voice is off
	Speak bool `json:"speak"`
}

// VoiceInput sets the speech preferences of a session
type VoiceInput struct {
	Enabled bool   `json:"enabled"`
	Name    string `json:"name" example:"Google UK English Female"`
}

// NearbyInput defines the query parameters for the nearby endpoint
type NearbyInput struct {
	Radius uint `form:"radius" binding:"omitempty,max=50000"` // Search radius in meters
}

// sessionID parses the :id path parameter, writing a 400 when it is malformed
func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, errors.New("invalid session id"))
		return uuid.Nil, false
	}
	return id, true
}

// handleStartSession godoc
// @Summary Start a session
// @Description Resolve a device geolocation result into the shared coordinate, falling back to the default location with a notice
// @Tags sessions
// @Accept json
// @Produce json
// @Param fix body location.Fix true "Device geolocation result"
// @Success 201 {object} session.Session
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sessions [post]
func (app *App) handleStartSession(c *gin.Context) {
	var fix location.Fix
	if err := c.ShouldBindJSON(&fix); err != nil {
		badRequest(c, err)
		return
	}

	sess, err := app.sessionService.Start(c.Request.Context(), fix)
	if err != nil {
		app.respondError(c, err, http.StatusInternalServerError, "failed to start session", "status", fix.Status)
		return
	}

	c.JSON(http.StatusCreated, sess)
}

// handleGetSession godoc
// @Summary Get a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID" format(uuid)
// @Success 200 {object} session.Session
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [get]
func (app *App) handleGetSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	sess, err := app.sessionService.Get(c.Request.Context(), id)
	if err != nil {
		app.respondError(c, err, http.StatusInternalServerError, "failed to get session", "session_id", id)
		return
	}

	c.JSON(http.StatusOK, sess)
}

// handleDeleteSession godoc
// @Summary Delete a session
// @Tags sessions
// @Param id path string true "Session ID" format(uuid)
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [delete]
func (app *App) handleDeleteSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	if err := app.sessionService.Delete(c.Request.Context(), id); err != nil {
		app.respondError(c, err, http.StatusInternalServerError, "failed to delete session", "session_id", id)
		return
	}

	c.Status(http.StatusNoContent)
}

// handleMoveSession godoc
// @Summary Move the shared coordinate
// @Description Change the session coordinate without selecting a place. The map flies to the new coordinate.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID" format(uuid)
// @Param coords body MoveSessionInput true "New coordinate"
// @Success 200 {object} session.Session
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/location [put]
func (app *App) handleMoveSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var input MoveSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	coords := types.NewCoords(*input.Latitude, *input.Longitude)
	sess, err := app.sessionService.MoveTo(c.Request.Context(), id, coords)
	if err != nil {
		app.respondError(c, err, http.StatusInternalServerError, "failed to move session",
			"session_id", id,
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
		)
		return
	}

	c.JSON(http.StatusOK, sess)
}

// handleSelectPlace godoc
// @Summary Select a place
// @Description Select a search result. The shared coordinate moves to its centre ([lng, lat]) and the map flies there.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID" format(uuid)
// @Param place body places.Place true "Selected place"
// @Success 200 {object} session.Session
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/place [post]
func (app *App) handleSelectPlace(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var place places.Place
	if err := c.ShouldBindJSON(&place); err != nil {
		badRequest(c, err)
		return
	}

	sess, err := app.sessionService.SelectPlace(c.Request.Context(), id, place)
	if err != nil {
		app.respondError(c, err, http.StatusInternalServerError, "failed to select place",
			"session_id", id,
			"place", place.Name,
		)
		return
	}

	c.JSON(http.StatusOK, sess)
}

// handleChat godoc
// @Summary Chat with the guide
// @Description Send a message to the assistant. The reply is split into labelled sections; a place named in the message is searched and returned as candidates.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID" format(uuid)
// @Param message body ChatInput true "User message"
// @Success 200 {object} session.ChatResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /sessions/{id}/chat [post]
func (app *App) handleChat(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	result, err := app.sessionService.Chat(c.Request.Context(), id, input.Message, input.Speak)
	if err != nil {
		app.respondError(c, err, http.StatusInternalServerError, assistant.Apology, "session_id", id)
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleSetVoice godoc
// @Summary Set voice preferences
// @Description Enable or disable speech for assistant replies. Disabling clears the selected voice.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID" format(uuid)
// @Param voice body VoiceInput true "Voice preferences"
// @Success 200 {object} session.Session
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/voice [put]
func (app *App) handleSetVoice(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var input VoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	sess, err := app.sessionService.SetVoice(c.Request.Context(), id, input.Enabled, input.Name)
	if err != nil {
		app.respondError(c, err, http.StatusInternalServerError, "failed to set voice", "session_id", id)
		return
	}

	c.JSON(http.StatusOK, sess)
}

// handleSessionWeather godoc
// @Summary Weather at the shared coordinate
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID" format(uuid)
// @Success 200 {object} weather.Report
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /sessions/{id}/weather [get]
func (app *App) handleSessionWeather(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	report, err := app.sessionService.Weather(c.Request.Context(), id)
	if err != nil {
		app.respondError(c, err, http.StatusBadGateway, "failed to get weather", "session_id", id)
		return
	}

	c.JSON(http.StatusOK, report)
}

// handleSessionNearby godoc
// @Summary Points of interest near the shared coordinate
// @Description Find tourist attractions around the session coordinate and add them to the map as markers
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID" format(uuid)
// @Param radius query int false "Search radius in meters" maximum(50000) default(5000)
// @Success 200 {object} session.NearbyResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /sessions/{id}/nearby [get]
func (app *App) handleSessionNearby(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var input NearbyInput
	if err := c.ShouldBindQuery(&input); err != nil {
		badRequest(c, err)
		return
	}

	result, err := app.sessionService.Nearby(c.Request.Context(), id, input.Radius)
	if err != nil {
		app.respondError(c, err, http.StatusBadGateway, "failed to find nearby places", "session_id", id)
		return
	}

	c.JSON(http.StatusOK, result)
}
