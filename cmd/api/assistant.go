package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"local-guide/internal/assistant"
)

// handleQuickPrompts godoc
// @Summary Quick prompts
// @Description One-tap shortcuts. Sending one is the same as sending its label as a chat message.
// @Tags assistant
// @Produce json
// @Success 200 {array} assistant.QuickPrompt
// @Router /assistant/quick-prompts [get]
func (app *App) handleQuickPrompts(c *gin.Context) {
	c.JSON(http.StatusOK, assistant.QuickPrompts())
}
