package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPLatencyBuckets = []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
)

// HTTPMetrics groups HTTP-related metrics
type HTTPMetrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	SlowRequests     *prometheus.CounterVec
}

// NewHTTPMetrics creates and returns HTTP metrics
func NewHTTPMetrics() *HTTPMetrics {
	return &HTTPMetrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "gallery_http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels(),
			},
			[]string{"method", "handler", "status_class"}, // status_class: 2xx, 3xx, 4xx, 5xx
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "gallery_http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				Buckets:     HTTPLatencyBuckets,
				ConstLabels: constLabels(),
			},
			[]string{"method", "handler"},
		),
		RequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "gallery_http_requests_in_flight",
				Help:        "Number of HTTP requests currently being processed",
				ConstLabels: constLabels(),
			},
		),
		SlowRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "gallery_http_slow_requests_total",
				Help:        "Total number of slow requests (>1s)",
				ConstLabels: constLabels(),
			},
			[]string{"method", "handler", "duration_bucket"}, // "1-2s", "2-5s", "5s+"
		),
	}
}

// Register registers all HTTP metrics with the given registry
func (h *HTTPMetrics) Register(reg *prometheus.Registry) {
	reg.MustRegister(
		h.RequestsTotal,
		h.RequestDuration,
		h.RequestsInFlight,
		h.SlowRequests,
	)
}

// GetStatusClass converts HTTP status code to class (2xx, 3xx, 4xx, 5xx)
func GetStatusClass(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "2xx"
	case statusCode >= 300 && statusCode < 400:
		return "3xx"
	case statusCode >= 400 && statusCode < 500:
		return "4xx"
	case statusCode >= 500:
		return "5xx"
	default:
		return "other"
	}
}

// GetHandlerPattern maps a request path to a low-cardinality handler label
func GetHandlerPattern(path string) string {
	switch {
	case path == "" || path == "/":
		return "root"
	case strings.HasPrefix(path, "/swagger"):
		return "swagger"
	case path == "/health":
		return "health"
	case strings.HasPrefix(path, "/assets/"):
		return "assets"
	case strings.HasPrefix(path, "/gallery/v1/tokens/"):
		// /gallery/v1/tokens/{token_id}/download
		parts := strings.Split(strings.Trim(path, "/"), "/")
		if len(parts) >= 5 {
			return "tokens_" + parts[4]
		}
		return "tokens"
	case strings.HasPrefix(path, "/gallery/v1/"):
		parts := strings.Split(strings.Trim(path, "/"), "/")
		if len(parts) >= 3 && parts[2] != "" {
			return parts[2] // session, formats, chain
		}
		return "gallery"
	default:
		return "other"
	}
}

// GetDurationBucket categorizes request duration for slow request tracking
func GetDurationBucket(seconds float64) string {
	switch {
	case seconds < 1:
		return "" // Don't track fast requests
	case seconds < 2:
		return "1-2s"
	case seconds < 5:
		return "2-5s"
	default:
		return "5s+"
	}
}

// TrackHTTPRequest records a completed HTTP request
func TrackHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	m := GetMetrics()
	if m == nil {
		return
	}
	handler := GetHandlerPattern(path)
	seconds := duration.Seconds()

	m.HTTP.RequestsTotal.WithLabelValues(method, handler, GetStatusClass(statusCode)).Inc()
	m.HTTP.RequestDuration.WithLabelValues(method, handler).Observe(seconds)
	if bucket := GetDurationBucket(seconds); bucket != "" {
		m.HTTP.SlowRequests.WithLabelValues(method, handler, bucket).Inc()
	}
}

// AddRequestsInFlight adjusts the in-flight request gauge
func AddRequestsInFlight(delta float64) {
	if m := GetMetrics(); m != nil {
		m.HTTP.RequestsInFlight.Add(delta)
	}
}
