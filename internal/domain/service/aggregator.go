package service

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/turtacn/opspulse/internal/domain/models"
	"github.com/turtacn/opspulse/pkg/constants"
	"github.com/turtacn/opspulse/pkg/logger"
)

// AggregatorConfig controls buffer capacities and the rate ticker. The
// periodic recompute is opt-in via configuration so test harnesses can keep
// it off deterministically.
type AggregatorConfig struct {
	SampleCapacity          int
	RecentCapacity          int
	EnablePeriodicRecompute bool
	RecomputeInterval       time.Duration
}

// DefaultAggregatorConfig returns the production defaults.
func DefaultAggregatorConfig() AggregatorConfig {
	return AggregatorConfig{
		SampleCapacity:          constants.ResponseTimeSampleCapacity,
		RecentCapacity:          constants.RecentRequestCapacity,
		EnablePeriodicRecompute: true,
		RecomputeInterval:       constants.RequestRateRecomputeInterval,
	}
}

// requestAggregator is the single shared statistics register. One mutex
// guards every mutation path; the rate ticker takes the same lock.
//
// Known limitation: the recent-request list doubles as the source for the
// per-minute rate, so windows whose true volume exceeds RecentCapacity are
// undercounted. This is the documented capacity trade-off, not a bug.
type requestAggregator struct {
	mu  sync.Mutex
	cfg AggregatorConfig
	log logger.Logger

	total   int64
	success int64
	errors  int64

	rpm     int64
	peakRPM int64

	// samples is a FIFO ring of response times in milliseconds.
	samples   []float64
	head      int
	count     int
	sampleSum float64
	minMs     float64 // +Inf until the first sample arrives
	maxMs     float64

	// recent is ordered most-recent-first, bounded at RecentCapacity.
	recent []models.RequestRecord

	done     chan struct{}
	stopped  chan struct{}
	started  bool
	stopOnce bool
}

// NewRequestAggregator creates an aggregator with empty buffers and zeroed
// counters. The caller owns the lifecycle: Start to launch the rate ticker,
// Stop on shutdown.
func NewRequestAggregator(cfg AggregatorConfig, log logger.Logger) RequestAggregator {
	if cfg.SampleCapacity <= 0 {
		cfg.SampleCapacity = constants.ResponseTimeSampleCapacity
	}
	if cfg.RecentCapacity <= 0 {
		cfg.RecentCapacity = constants.RecentRequestCapacity
	}
	if log == nil {
		log = logger.NewNoopLogger()
	}

	return &requestAggregator{
		cfg:     cfg,
		log:     log,
		samples: make([]float64, cfg.SampleCapacity),
		minMs:   math.Inf(1),
		recent:  make([]models.RequestRecord, 0, cfg.RecentCapacity),
	}
}

func (a *requestAggregator) RecordRequest(sample RequestSample) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.total++
	if classifySuccess(sample.StatusCode) {
		a.success++
	} else {
		a.errors++
	}

	a.pushSample(float64(sample.Duration) / float64(time.Millisecond))
	a.pushRecent(models.RequestRecord{
		Method:     sample.Method,
		Path:       sample.Path,
		StatusCode: sample.StatusCode,
		DurationMs: float64(sample.Duration) / float64(time.Millisecond),
		Timestamp:  sample.Timestamp,
		ClientID:   TruncateClientID(sample.ClientID),
	})
}

// pushSample inserts a response time into the ring, evicting the oldest
// sample past capacity. Min/max are updated by comparison; a full rescan
// happens only when the evicted sample was the current extremum, keeping
// the reported values exact over the live buffer.
func (a *requestAggregator) pushSample(ms float64) {
	rescan := false

	if a.count < a.cfg.SampleCapacity {
		a.samples[(a.head+a.count)%a.cfg.SampleCapacity] = ms
		a.count++
	} else {
		evicted := a.samples[a.head]
		a.samples[a.head] = ms
		a.head = (a.head + 1) % a.cfg.SampleCapacity
		a.sampleSum -= evicted
		rescan = evicted <= a.minMs || evicted >= a.maxMs
	}

	a.sampleSum += ms
	if rescan {
		a.rescanExtremes()
		return
	}
	if ms < a.minMs {
		a.minMs = ms
	}
	if ms > a.maxMs {
		a.maxMs = ms
	}
}

func (a *requestAggregator) rescanExtremes() {
	a.minMs = math.Inf(1)
	a.maxMs = 0
	for i := 0; i < a.count; i++ {
		ms := a.samples[(a.head+i)%a.cfg.SampleCapacity]
		if ms < a.minMs {
			a.minMs = ms
		}
		if ms > a.maxMs {
			a.maxMs = ms
		}
	}
}

func (a *requestAggregator) pushRecent(rec models.RequestRecord) {
	if len(a.recent) < a.cfg.RecentCapacity {
		a.recent = append(a.recent, models.RequestRecord{})
	}
	copy(a.recent[1:], a.recent)
	a.recent[0] = rec
}

func (a *requestAggregator) RecomputeRequestRate() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.recomputeRateLocked(time.Now())
}

func (a *requestAggregator) recomputeRateLocked(now time.Time) {
	cutoff := now.Add(-constants.RequestRateWindow)

	var n int64
	for _, rec := range a.recent {
		if rec.Timestamp.After(cutoff) {
			n++
		}
	}

	a.rpm = n
	if n > a.peakRPM {
		a.peakRPM = n
	}
}

func (a *requestAggregator) Snapshot() models.MetricsSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	recent := make([]models.RequestRecord, len(a.recent))
	copy(recent, a.recent)

	return models.MetricsSnapshot{
		GeneratedAt:           time.Now().UTC(),
		RequestTotal:          a.total,
		RequestSuccess:        a.success,
		RequestErrors:         a.errors,
		RequestsPerMinute:     a.rpm,
		PeakRequestsPerMinute: a.peakRPM,
		AverageResponseTimeMs: a.averageLocked(),
		MinResponseTimeMs:     a.minLocked(),
		MaxResponseTimeMs:     a.maxMs,
		SampleCount:           a.count,
		RecentRequests:        recent,
	}
}

func (a *requestAggregator) HealthSummary() models.HealthSummary {
	a.mu.Lock()
	defer a.mu.Unlock()

	rate := 100.0
	if a.total > 0 {
		rate = float64(a.success) / float64(a.total) * 100.0
	}
	avg := a.averageLocked()

	return models.HealthSummary{
		Healthy:               rate >= constants.HealthySuccessRate && avg < float64(constants.HealthyMaxAvgResponseTime/time.Millisecond),
		SuccessRate:           rate,
		AverageResponseTimeMs: avg,
		RequestTotal:          a.total,
	}
}

func (a *requestAggregator) MetricsForPeriod(minutes int) models.PeriodMetrics {
	a.mu.Lock()
	defer a.mu.Unlock()

	cutoff := time.Now().Add(-time.Duration(minutes) * time.Minute)
	pm := models.PeriodMetrics{
		PeriodMinutes: minutes,
		Requests:      make([]models.RequestRecord, 0),
	}

	var durationSum float64
	for _, rec := range a.recent {
		if !rec.Timestamp.After(cutoff) {
			continue
		}
		pm.RequestCount++
		if classifySuccess(rec.StatusCode) {
			pm.SuccessCount++
		} else {
			pm.ErrorCount++
		}
		durationSum += rec.DurationMs
		pm.Requests = append(pm.Requests, rec)
	}
	if pm.RequestCount > 0 {
		pm.AverageResponseTimeMs = durationSum / float64(pm.RequestCount)
	}

	return pm
}

func (a *requestAggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.total = 0
	a.success = 0
	a.errors = 0
	a.rpm = 0
	a.peakRPM = 0
	a.head = 0
	a.count = 0
	a.sampleSum = 0
	a.minMs = math.Inf(1)
	a.maxMs = 0
	a.recent = a.recent[:0]

	a.log.Info(context.Background(), "Request metrics reset")
}

func (a *requestAggregator) Start(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.cfg.EnablePeriodicRecompute || a.started {
		return
	}
	a.started = true
	a.done = make(chan struct{})
	a.stopped = make(chan struct{})

	interval := a.cfg.RecomputeInterval
	if interval <= 0 {
		interval = constants.RequestRateRecomputeInterval
	}

	go a.run(ctx, interval)
	a.log.Info(ctx, "Request rate recomputation started", logger.Fields{
		"interval": interval.String(),
	})
}

func (a *requestAggregator) run(ctx context.Context, interval time.Duration) {
	defer close(a.stopped)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.RecomputeRequestRate()
		case <-a.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (a *requestAggregator) Stop() {
	a.mu.Lock()
	if !a.started || a.stopOnce {
		a.mu.Unlock()
		return
	}
	a.stopOnce = true
	close(a.done)
	stopped := a.stopped
	a.mu.Unlock()

	<-stopped
}

func (a *requestAggregator) averageLocked() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sampleSum / float64(a.count)
}

// minLocked reports 0 while the buffer is empty so the +Inf sentinel never
// leaks into JSON payloads.
func (a *requestAggregator) minLocked() float64 {
	if a.count == 0 {
		return 0
	}
	return a.minMs
}

// classifySuccess applies the status classification rule: 200-399 inclusive
// counts as success, everything else as error.
func classifySuccess(status int) bool {
	return status >= constants.StatusSuccessLowerBound && status <= constants.StatusSuccessUpperBound
}

// TruncateClientID keeps the leading characters of a client identifier and
// masks the rest, matching the privacy truncation applied to stored records.
func TruncateClientID(id string) string {
	if len(id) > constants.ClientIDVisibleChars {
		id = id[:constants.ClientIDVisibleChars]
	}
	return id + "..."
}
