package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the product endpoint.
func RegisterRoutes(r gin.IRoutes, h *handler) {
	r.POST("/products", h.Search)
}
