package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/turtacn/opspulse/internal/application/dto"
	"github.com/turtacn/opspulse/internal/config"
	"github.com/turtacn/opspulse/internal/domain/service"
)

// StatusHandler serves the /api/status and /api/config endpoints consumed
// by the dashboard.
type StatusHandler struct {
	aggregator service.RequestAggregator
	dashboard  config.DashboardConfig
	env        string
	version    string
	startedAt  time.Time
}

// NewStatusHandler creates a new StatusHandler. startedAt is the process
// start time, owned by the bootstrap.
func NewStatusHandler(aggregator service.RequestAggregator, cfg *config.Config, version string, startedAt time.Time) *StatusHandler {
	return &StatusHandler{
		aggregator: aggregator,
		dashboard:  cfg.Dashboard,
		env:        cfg.Server.Environment,
		version:    version,
		startedAt:  startedAt,
	}
}

// Status reports uptime, version and the headline request counters.
func (h *StatusHandler) Status(c *gin.Context) {
	snap := h.aggregator.Snapshot()

	dto.SendSuccess(c, http.StatusOK, gin.H{
		"service":                  "opspulse",
		"version":                  h.version,
		"environment":              h.env,
		"uptime_seconds":           int64(time.Since(h.startedAt).Seconds()),
		"started_at":               h.startedAt.UTC(),
		"request_total":            snap.RequestTotal,
		"request_success":          snap.RequestSuccess,
		"request_errors":           snap.RequestErrors,
		"success_rate":             snap.SuccessRate(),
		"requests_per_minute":      snap.RequestsPerMinute,
		"peak_requests_per_minute": snap.PeakRequestsPerMinute,
	})
}

// DashboardConfig exposes the polling intervals so the front end never
// hard-codes them.
func (h *StatusHandler) DashboardConfig(c *gin.Context) {
	dto.SendSuccess(c, http.StatusOK, gin.H{
		"status_poll_seconds": h.dashboard.StatusPollSeconds,
		"chart_poll_seconds":  h.dashboard.ChartPollSeconds,
	})
}
