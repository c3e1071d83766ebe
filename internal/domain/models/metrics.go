package models

import "time"

// RequestRecord is an immutable record of one completed HTTP request.
// ClientID is truncated by the aggregator before the record is stored.
type RequestRecord struct {
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	DurationMs float64   `json:"duration_ms"`
	Timestamp  time.Time `json:"timestamp"`
	ClientID   string    `json:"client_id"`
}

// MetricsSnapshot is a point-in-time, read-only copy of the aggregate
// request metrics. Slices are copied out so callers can never mutate the
// aggregator's live buffers.
type MetricsSnapshot struct {
	GeneratedAt time.Time `json:"generated_at"`

	RequestTotal   int64 `json:"request_total"`
	RequestSuccess int64 `json:"request_success"`
	RequestErrors  int64 `json:"request_errors"`

	RequestsPerMinute     int64 `json:"requests_per_minute"`
	PeakRequestsPerMinute int64 `json:"peak_requests_per_minute"`

	AverageResponseTimeMs float64 `json:"average_response_time_ms"`
	MinResponseTimeMs     float64 `json:"min_response_time_ms"`
	MaxResponseTimeMs     float64 `json:"max_response_time_ms"`
	SampleCount           int     `json:"sample_count"`

	// RecentRequests is ordered most-recent-first.
	RecentRequests []RequestRecord `json:"recent_requests"`
}

// SuccessRate returns the success percentage over all recorded requests.
// A snapshot with no traffic reports 100%.
func (s *MetricsSnapshot) SuccessRate() float64 {
	if s.RequestTotal == 0 {
		return 100.0
	}
	return float64(s.RequestSuccess) / float64(s.RequestTotal) * 100.0
}

// HealthSummary is the derived health verdict exposed by /health.
type HealthSummary struct {
	Healthy               bool    `json:"healthy"`
	SuccessRate           float64 `json:"success_rate"`
	AverageResponseTimeMs float64 `json:"average_response_time_ms"`
	RequestTotal          int64   `json:"request_total"`
}

// PeriodMetrics summarizes the requests observed inside a trailing window.
// Counts are computed from the bounded recent-request list, so windows whose
// true volume exceeds that capacity are undercounted.
type PeriodMetrics struct {
	PeriodMinutes         int             `json:"period_minutes"`
	RequestCount          int64           `json:"request_count"`
	SuccessCount          int64           `json:"success_count"`
	ErrorCount            int64           `json:"error_count"`
	AverageResponseTimeMs float64         `json:"average_response_time_ms"`
	Requests              []RequestRecord `json:"requests"`
}
