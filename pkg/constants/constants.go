// Package constants defines system-wide constants for the OpsPulse service.
// This package provides type-safe constant definitions used across all modules.
package constants

import "time"

// ServiceName identifies the service in logs, traces and metrics.
const ServiceName = "opspulse"

// ================================================================================
// Context Keys
// ================================================================================

// ContextKey is a typed key for values stored in a context.Context
type ContextKey string

const (
	// ContextKeyRequestID carries the per-request correlation ID
	ContextKeyRequestID ContextKey = "request_id"

	// ContextKeyTraceID carries the OpenTelemetry trace ID
	ContextKeyTraceID ContextKey = "trace_id"

	// ContextKeyLogger carries a request-scoped logger
	ContextKeyLogger ContextKey = "logger"
)

// ================================================================================
// Metrics Aggregation Constants
// ================================================================================

const (
	// ResponseTimeSampleCapacity bounds the rolling response-time buffer
	ResponseTimeSampleCapacity = 1000

	// RecentRequestCapacity bounds the most-recent-first request list
	RecentRequestCapacity = 50

	// RequestRateWindow is the trailing window for requests-per-minute
	RequestRateWindow = 60 * time.Second

	// RequestRateRecomputeInterval is the default period of the rate ticker
	RequestRateRecomputeInterval = 60 * time.Second

	// ClientIDVisibleChars is how much of a client identifier is retained
	// before truncation; the rest is dropped for privacy
	ClientIDVisibleChars = 10
)

// ================================================================================
// Health Thresholds
// ================================================================================

const (
	// HealthySuccessRate is the minimum success ratio (percent) for a
	// healthy verdict
	HealthySuccessRate = 95.0

	// HealthyMaxAvgResponseTime is the average latency ceiling for a
	// healthy verdict
	HealthyMaxAvgResponseTime = 1000 * time.Millisecond
)

// ================================================================================
// HTTP Status Classification
// ================================================================================

const (
	// StatusSuccessLowerBound is the lowest status code counted as success
	StatusSuccessLowerBound = 200

	// StatusSuccessUpperBound is the highest status code counted as success
	StatusSuccessUpperBound = 399
)

// ================================================================================
// Error Codes
// ================================================================================

// ErrorCode represents a machine-readable error classification
type ErrorCode string

const (
	// ErrCodeInvalidRequest indicates a malformed or unprocessable request
	ErrCodeInvalidRequest ErrorCode = "invalid_request"

	// ErrCodeNotFound indicates the requested resource does not exist
	ErrCodeNotFound ErrorCode = "not_found"

	// ErrCodeConflict indicates the resource already exists
	ErrCodeConflict ErrorCode = "conflict"

	// ErrCodeInternal indicates an unexpected server-side failure
	ErrCodeInternal ErrorCode = "internal_error"
)
