package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"local-guide/internal/assistant"
	"local-guide/internal/places"
	"local-guide/internal/session"
	"local-guide/internal/types"
	"local-guide/internal/weather"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error" example:"session not found"`
}

// statusFor maps domain errors onto HTTP statuses. Unrecognised errors get fallback.
func statusFor(err error, fallback int) int {
	switch {
	case errors.Is(err, types.ErrInvalidLatitude),
		errors.Is(err, types.ErrInvalidLongitude),
		errors.Is(err, assistant.ErrEmptyMessage),
		errors.Is(err, places.ErrEmptyQuery):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNotFound),
		errors.Is(err, places.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, assistant.ErrNotConfigured),
		errors.Is(err, places.ErrNearbyNotConfigured),
		errors.Is(err, weather.ErrProviderNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, assistant.ErrGenerationFailed):
		return http.StatusBadGateway
	default:
		return fallback
	}
}

// respondError writes err with the mapped status. Client errors echo the error
// text; server errors are logged and reported with msg.
func (app *App) respondError(c *gin.Context, err error, fallback int, msg string, attrs ...any) {
	status := statusFor(err, fallback)
	_ = c.Error(err)

	if status < http.StatusInternalServerError || status == http.StatusServiceUnavailable {
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	app.logger.Error(msg, append(attrs, "error", err)...)
	c.JSON(status, ErrorResponse{Error: msg})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}
