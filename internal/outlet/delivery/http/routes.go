package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the outlet endpoint.
func RegisterRoutes(r gin.IRoutes, h *handler) {
	r.POST("/outlets", h.Query)
}
