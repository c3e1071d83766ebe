package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/turtacn/opspulse/internal/application/dto"
	"github.com/turtacn/opspulse/internal/domain/service"
	"github.com/turtacn/opspulse/pkg/errors"
)

// MetricsHandler serves the aggregator's JSON views. The Prometheus
// exposition lives at /metrics and is wired directly in the router.
type MetricsHandler struct {
	aggregator service.RequestAggregator
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(aggregator service.RequestAggregator) *MetricsHandler {
	return &MetricsHandler{aggregator: aggregator}
}

// GetMetrics returns the full aggregate snapshot.
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	dto.SendSuccess(c, http.StatusOK, h.aggregator.Snapshot())
}

// GetWindow returns metrics for a trailing window of N minutes
// (?minutes=N, default 5). Counts come from the bounded recent-request
// list, so high-traffic windows are undercounted past its capacity.
func (h *MetricsHandler) GetWindow(c *gin.Context) {
	minutes := 5
	if raw := c.Query("minutes"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			dto.SendError(c, errors.ErrInvalidRequest.WithDetail("minutes", raw))
			return
		}
		minutes = parsed
	}

	dto.SendSuccess(c, http.StatusOK, h.aggregator.MetricsForPeriod(minutes))
}
