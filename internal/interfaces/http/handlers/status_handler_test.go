package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turtacn/opspulse/internal/config"
)

func newStatusRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	agg := newAggregator(t)
	record(agg, 200, 20*time.Millisecond)
	record(agg, 503, 20*time.Millisecond)

	cfg := &config.Config{
		Server:    config.ServerConfig{Environment: "test"},
		Dashboard: config.DashboardConfig{StatusPollSeconds: 30, ChartPollSeconds: 10},
	}
	handler := NewStatusHandler(agg, cfg, "1.2.3", time.Now().Add(-time.Minute))

	router := gin.New()
	router.GET("/api/status", handler.Status)
	router.GET("/api/config", handler.DashboardConfig)
	return router
}

func TestStatusHandler_Status(t *testing.T) {
	router := newStatusRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Service       string  `json:"service"`
			Version       string  `json:"version"`
			Environment   string  `json:"environment"`
			UptimeSeconds int64   `json:"uptime_seconds"`
			RequestTotal  int64   `json:"request_total"`
			SuccessRate   float64 `json:"success_rate"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "opspulse", body.Data.Service)
	assert.Equal(t, "1.2.3", body.Data.Version)
	assert.Equal(t, "test", body.Data.Environment)
	assert.GreaterOrEqual(t, body.Data.UptimeSeconds, int64(59))
	assert.Equal(t, int64(2), body.Data.RequestTotal)
	assert.InDelta(t, 50.0, body.Data.SuccessRate, 1e-9)
}

func TestStatusHandler_DashboardConfig(t *testing.T) {
	router := newStatusRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/config", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			StatusPollSeconds int `json:"status_poll_seconds"`
			ChartPollSeconds  int `json:"chart_poll_seconds"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 30, body.Data.StatusPollSeconds)
	assert.Equal(t, 10, body.Data.ChartPollSeconds)
}
