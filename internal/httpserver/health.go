package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coffee-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	RootMessage   = "Coffee assistant API is running"
	HealthVersion = "1.0.0"
	ServiceName   = "coffee-assistant"
)

// rootCheck handles the root status probe
// @Summary Root Status
// @Description Plain status payload kept for clients of the tool endpoints
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is running"
// @Router / [get]
func (srv HTTPServer) rootCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": RootMessage,
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": RootMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check, ready once routes are mapped.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"message": RootMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"product": srv.productUC != nil,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": RootMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
