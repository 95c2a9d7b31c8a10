package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	LatencyBuckets   = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	SemaphoreBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
)

// UpstreamMetrics groups metrics about calls to third-party services
type UpstreamMetrics struct {
	RequestsTotal         *prometheus.CounterVec
	Latency               *prometheus.HistogramVec
	ConcurrentActive      prometheus.Gauge
	SemaphoreWaitDuration prometheus.Histogram
	RateLimitHitsTotal    *prometheus.CounterVec
	FallbacksTotal        *prometheus.CounterVec
}

// NewUpstreamMetrics creates and returns upstream metrics
func NewUpstreamMetrics() *UpstreamMetrics {
	return &UpstreamMetrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clawpad_upstream_requests_total",
				Help: "Total number of upstream requests",
			},
			[]string{"service", "method", "status_code"},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "clawpad_upstream_latency_seconds",
				Help:    "Upstream request latency in seconds",
				Buckets: LatencyBuckets,
			},
			[]string{"service", "method"},
		),
		ConcurrentActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "clawpad_upstream_requests_active",
				Help: "Number of currently active upstream requests",
			},
		),
		SemaphoreWaitDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "clawpad_semaphore_wait_duration_seconds",
				Help:    "Time spent waiting for the outbound request semaphore",
				Buckets: SemaphoreBuckets,
			},
		),
		RateLimitHitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clawpad_upstream_rate_limit_hits_total",
				Help: "Total number of upstream rate limit hits (429 responses)",
			},
			[]string{"service"},
		),
		FallbacksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clawpad_upstream_fallbacks_total",
				Help: "Total number of responses served from a fallback value after an upstream failure",
			},
			[]string{"action"},
		),
	}
}

// Register registers all upstream metrics with the given registry
func (u *UpstreamMetrics) Register(reg *prometheus.Registry) {
	reg.MustRegister(
		u.RequestsTotal,
		u.Latency,
		u.ConcurrentActive,
		u.SemaphoreWaitDuration,
		u.RateLimitHitsTotal,
		u.FallbacksTotal,
	)
}

func UpstreamRequestsTotal() *prometheus.CounterVec {
	return GetMetrics().Upstream.RequestsTotal
}

func UpstreamLatency() *prometheus.HistogramVec {
	return GetMetrics().Upstream.Latency
}

func UpstreamRequestsActive() prometheus.Gauge {
	return GetMetrics().Upstream.ConcurrentActive
}

func SemaphoreWaitDuration() prometheus.Histogram {
	return GetMetrics().Upstream.SemaphoreWaitDuration
}

func RateLimitHitsTotal() *prometheus.CounterVec {
	return GetMetrics().Upstream.RateLimitHitsTotal
}

// TrackFallback counts a response that was answered from its fallback value
func TrackFallback(action string) {
	GetMetrics().Upstream.FallbacksTotal.WithLabelValues(action).Inc()
}
