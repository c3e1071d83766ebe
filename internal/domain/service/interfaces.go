package service

import (
	"context"
	"time"

	"github.com/turtacn/opspulse/internal/domain/models"
)

// RequestSample carries everything the routing layer knows about one
// completed request. The aggregator accepts any values as-is; input
// validation is the caller's concern.
type RequestSample struct {
	Method     string
	Path       string
	StatusCode int
	Duration   time.Duration
	Timestamp  time.Time
	ClientID   string
	UserAgent  string
}

// RequestAggregator maintains process-wide request statistics: counters,
// a bounded response-time buffer, a bounded most-recent-first request list
// and a trailing-window request rate.
type RequestAggregator interface {
	// RecordRequest folds one completed request into the aggregate state.
	RecordRequest(sample RequestSample)

	// RecomputeRequestRate recounts requests inside the trailing 60-second
	// window and updates the per-minute rate and its running peak.
	RecomputeRequestRate()

	// Snapshot returns a read-only copy of the aggregate state.
	Snapshot() models.MetricsSnapshot

	// HealthSummary derives the health verdict from the current state.
	HealthSummary() models.HealthSummary

	// MetricsForPeriod summarizes the requests inside the trailing window
	// of the given length in minutes.
	MetricsForPeriod(minutes int) models.PeriodMetrics

	// Reset returns all counters and buffers to their initial state.
	Reset()

	// Start launches the periodic rate recomputation when enabled by
	// configuration; it is a no-op otherwise.
	Start(ctx context.Context)

	// Stop cancels the periodic recomputation. Safe to call more than once.
	Stop()
}
