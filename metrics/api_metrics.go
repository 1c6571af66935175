package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	LatencyBuckets   = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	SemaphoreBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
)

// ExternalAPIMetrics groups metrics of calls to the remote NFT API and remote images
type ExternalAPIMetrics struct {
	RequestsTotal         *prometheus.CounterVec
	Latency               *prometheus.HistogramVec
	ConcurrentActive      prometheus.Gauge
	SemaphoreWaitDuration prometheus.Histogram
	SharedFetchesTotal    prometheus.Counter
}

// NewExternalAPIMetrics creates and returns external API metrics
func NewExternalAPIMetrics() *ExternalAPIMetrics {
	return &ExternalAPIMetrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "gallery_external_api_requests_total",
				Help:        "Total number of external API requests",
				ConstLabels: constLabels(),
			},
			[]string{"endpoint", "status_code"},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "gallery_external_api_latency_seconds",
				Help:        "External API request latency in seconds",
				Buckets:     LatencyBuckets,
				ConstLabels: constLabels(),
			},
			[]string{"endpoint"},
		),
		ConcurrentActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "gallery_concurrent_requests_active",
				Help:        "Number of currently active external API requests",
				ConstLabels: constLabels(),
			},
		),
		SemaphoreWaitDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:        "gallery_semaphore_wait_duration_seconds",
				Help:        "Time spent waiting for an upstream request slot",
				Buckets:     SemaphoreBuckets,
				ConstLabels: constLabels(),
			},
		),
		SharedFetchesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "gallery_shared_fetches_total",
				Help:        "Number of wallet fetches served by joining an in-flight request",
				ConstLabels: constLabels(),
			},
		),
	}
}

// Register registers all external API metrics with the given registry
func (e *ExternalAPIMetrics) Register(reg *prometheus.Registry) {
	reg.MustRegister(
		e.RequestsTotal,
		e.Latency,
		e.ConcurrentActive,
		e.SemaphoreWaitDuration,
		e.SharedFetchesTotal,
	)
}

// TrackExternalRequest records one upstream call. A zero status code marks a transport error.
func TrackExternalRequest(endpoint string, statusCode int, duration time.Duration) {
	m := GetMetrics()
	if m == nil {
		return
	}
	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	m.ExternalAPI.RequestsTotal.WithLabelValues(endpoint, status).Inc()
	m.ExternalAPI.Latency.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// AddConcurrentRequests adjusts the active upstream request gauge.
func AddConcurrentRequests(delta float64) {
	if m := GetMetrics(); m != nil {
		m.ExternalAPI.ConcurrentActive.Add(delta)
	}
}

func ObserveSemaphoreWait(d time.Duration) {
	if m := GetMetrics(); m != nil {
		m.ExternalAPI.SemaphoreWaitDuration.Observe(d.Seconds())
	}
}

func TrackSharedFetch() {
	if m := GetMetrics(); m != nil {
		m.ExternalAPI.SharedFetchesTotal.Inc()
	}
}
