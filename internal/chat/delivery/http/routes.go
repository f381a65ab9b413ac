package http

import (
	"github.com/gin-gonic/gin"

	"coffee-assistant/internal/middleware"
)

// RegisterRoutes maps the chat endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("", mw.RateLimit(), h.Chat)
		chat.GET("/sessions/:id", h.History)
	}
}
