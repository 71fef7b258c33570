package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ServiceName is reported by the health endpoint
const ServiceName = "admin-event-ops-service"

// HealthHandler handles health check endpoints
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ReadyResponse represents the readiness check response
type ReadyResponse struct {
	Status     string            `json:"status"`
	Timestamp  string            `json:"timestamp"`
	Components map[string]string `json:"components"`
}

// Health returns a simple health check (liveness probe)
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: ServiceName,
	})
}

// Ready returns a readiness check. The store is in-process memory, so the
// service is ready as soon as it serves traffic.
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, ReadyResponse{
		Status:    "ready",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Components: map[string]string{
			"store": "healthy",
		},
	})
}
