package metrics

import "github.com/prometheus/client_golang/prometheus"

// GalleryMetrics groups gallery domain metrics
type GalleryMetrics struct {
	DownloadsTotal      *prometheus.CounterVec
	DownloadBytes       *prometheus.HistogramVec
	SessionFetchesTotal *prometheus.CounterVec
	ActiveSessions      prometheus.Gauge
}

func NewGalleryMetrics() *GalleryMetrics {
	return &GalleryMetrics{
		DownloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "gallery_downloads_total",
				Help:        "Download attempts by format and outcome",
				ConstLabels: constLabels(),
			},
			[]string{"format", "outcome"}, // outcome: ok, not_found, empty, network
		),
		DownloadBytes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "gallery_download_bytes",
				Help:        "Size of successfully downloaded payloads",
				Buckets:     prometheus.ExponentialBuckets(1024, 4, 10),
				ConstLabels: constLabels(),
			},
			[]string{"format"},
		),
		SessionFetchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "gallery_session_fetches_total",
				Help:        "Collection fetches by outcome",
				ConstLabels: constLabels(),
			},
			[]string{"outcome"}, // outcome: ok, error, stale
		),
		ActiveSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "gallery_active_sessions",
				Help:        "Number of viewer sessions held in memory",
				ConstLabels: constLabels(),
			},
		),
	}
}

// Register registers all gallery metrics with the given registry
func (g *GalleryMetrics) Register(reg *prometheus.Registry) {
	reg.MustRegister(
		g.DownloadsTotal,
		g.DownloadBytes,
		g.SessionFetchesTotal,
		g.ActiveSessions,
	)
}

func TrackDownload(format, outcome string, size int) {
	m := GetMetrics()
	if m == nil {
		return
	}
	m.Gallery.DownloadsTotal.WithLabelValues(format, outcome).Inc()
	if outcome == "success" {
		m.Gallery.DownloadBytes.WithLabelValues(format).Observe(float64(size))
	}
}

func TrackSessionFetch(outcome string) {
	if m := GetMetrics(); m != nil {
		m.Gallery.SessionFetchesTotal.WithLabelValues(outcome).Inc()
	}
}

func SetActiveSessions(n int) {
	if m := GetMetrics(); m != nil {
		m.Gallery.ActiveSessions.Set(float64(n))
	}
}
