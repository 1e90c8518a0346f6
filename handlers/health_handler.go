package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeby-aftab/trip-ai-backend/services"
)

// HealthHandler exposes liveness and readiness probes.
type HealthHandler struct {
	healthService *services.HealthService
}

func NewHealthHandler(healthService *services.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// DetailedHealth reports the aggregate health of the service and its
// dependencies.
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	report := h.healthService.CheckHealth(c.Request.Context())

	status := http.StatusOK
	if report.Status != "up" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}

// LivenessCheck reports that the process is running.
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "up"})
}

// ReadinessCheck reports whether the service can accept traffic.
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	if !h.healthService.IsReady(c.Request.Context()) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "up"})
}
