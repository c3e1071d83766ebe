package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/turtacn/opspulse/internal/domain/service"
	"github.com/turtacn/opspulse/pkg/logger"
)

// HealthHandler provides the health check endpoints.
type HealthHandler struct {
	aggregator service.RequestAggregator
	log        logger.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(aggregator service.RequestAggregator, log logger.Logger) *HealthHandler {
	return &HealthHandler{
		aggregator: aggregator,
		log:        log,
	}
}

// HealthCheck reports the derived health verdict: healthy while the success
// rate stays at or above 95% and the average response time below one second.
// An instance that has seen no traffic is healthy by definition.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	summary := h.aggregator.HealthSummary()

	status := "healthy"
	httpStatus := http.StatusOK
	if !summary.Healthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, gin.H{
		"status":                   status,
		"timestamp":                time.Now().UTC(),
		"success_rate":             summary.SuccessRate,
		"average_response_time_ms": summary.AverageResponseTimeMs,
		"request_total":            summary.RequestTotal,
	})
}

// LivenessCheck reports that the process is up, independent of traffic health.
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "alive",
		"timestamp": time.Now().UTC(),
	})
}
