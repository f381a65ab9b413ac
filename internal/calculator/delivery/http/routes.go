package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the calculator endpoint.
func RegisterRoutes(r gin.IRoutes, h *handler) {
	r.POST("/calculate", h.Calculate)
}
