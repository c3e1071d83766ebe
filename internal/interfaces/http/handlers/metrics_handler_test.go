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
)

func TestGetMetrics_ReturnsSnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)
	agg := newAggregator(t)
	record(agg, 200, 100*time.Millisecond)
	record(agg, 500, 300*time.Millisecond)

	router := gin.New()
	router.GET("/api/metrics", NewMetricsHandler(agg).GetMetrics)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			RequestTotal          int64   `json:"request_total"`
			RequestErrors         int64   `json:"request_errors"`
			AverageResponseTimeMs float64 `json:"average_response_time_ms"`
			RecentRequests        []struct {
				ClientID string `json:"client_id"`
			} `json:"recent_requests"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(2), body.Data.RequestTotal)
	assert.Equal(t, int64(1), body.Data.RequestErrors)
	assert.InDelta(t, 200.0, body.Data.AverageResponseTimeMs, 1e-9)
	require.Len(t, body.Data.RecentRequests, 2)
	assert.Equal(t, "10.1.2.3...", body.Data.RecentRequests[0].ClientID)
}

func TestGetWindow_DefaultAndExplicitMinutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	agg := newAggregator(t)
	record(agg, 200, 10*time.Millisecond)

	router := gin.New()
	router.GET("/api/metrics/window", NewMetricsHandler(agg).GetWindow)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/metrics/window", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			PeriodMinutes int   `json:"period_minutes"`
			RequestCount  int64 `json:"request_count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 5, body.Data.PeriodMinutes)
	assert.Equal(t, int64(1), body.Data.RequestCount)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/metrics/window?minutes=15", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 15, body.Data.PeriodMinutes)
}

func TestGetWindow_RejectsInvalidMinutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/api/metrics/window", NewMetricsHandler(newAggregator(t)).GetWindow)

	for _, raw := range []string{"abc", "0", "-3"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/metrics/window?minutes="+raw, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, "minutes=%s must be rejected", raw)
	}
}
