package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatusClass(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{200, "2xx"},
		{302, "3xx"},
		{404, "4xx"},
		{502, "5xx"},
		{100, "other"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GetStatusClass(tt.code))
	}
}

func TestGetHandlerPattern(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/", "root"},
		{"/health", "health"},
		{"/swagger/index.html", "swagger"},
		{"/assets/glb/7.glb", "assets"},
		{"/gallery/v1/session", "session"},
		{"/gallery/v1/session/page/next", "session"},
		{"/gallery/v1/formats", "formats"},
		{"/gallery/v1/tokens/0007/download", "tokens_download"},
		{"/gallery/v1/tokens/7/preview", "tokens_preview"},
		{"/unknown", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHandlerPattern(tt.path))
		})
	}
}

func TestGetDurationBucket(t *testing.T) {
	assert.Equal(t, "", GetDurationBucket(0.3))
	assert.Equal(t, "1-2s", GetDurationBucket(1.5))
	assert.Equal(t, "2-5s", GetDurationBucket(3))
	assert.Equal(t, "5s+", GetDurationBucket(12))
}

func TestTrackers(t *testing.T) {
	Init("33139")
	require.NotNil(t, GetMetrics())

	before := testutil.ToFloat64(GetMetrics().Gallery.DownloadsTotal.WithLabelValues("GLB", "not_found"))
	TrackDownload("GLB", "not_found", 0)
	after := testutil.ToFloat64(GetMetrics().Gallery.DownloadsTotal.WithLabelValues("GLB", "not_found"))
	assert.Equal(t, before+1, after)

	TrackExternalRequest("nfts", 0, 10*time.Millisecond)
	assert.GreaterOrEqual(t, testutil.ToFloat64(GetMetrics().ExternalAPI.RequestsTotal.WithLabelValues("nfts", "error")), 1.0)

	SetActiveSessions(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(GetMetrics().Gallery.ActiveSessions))
}

func TestRecoverFromPanic_TracksAndRepanics(t *testing.T) {
	Init("33139")
	panics := GetMetrics().Error.PanicsTotal.WithLabelValues("fetcher")
	errs := GetMetrics().Error.ErrorsTotal.WithLabelValues("fetcher", "panic")
	beforePanics, beforeErrs := testutil.ToFloat64(panics), testutil.ToFloat64(errs)

	assert.Panics(t, func() {
		defer RecoverFromPanic("fetcher")
		panic("boom")
	})

	assert.Equal(t, beforePanics+1, testutil.ToFloat64(panics))
	assert.Equal(t, beforeErrs+1, testutil.ToFloat64(errs))

	assert.NotPanics(t, func() {
		defer RecoverFromPanic("fetcher")
	})
	assert.Equal(t, beforePanics+1, testutil.ToFloat64(panics))
}

func TestSetComponentHealth(t *testing.T) {
	Init("33139")
	gauge := GetMetrics().Error.ComponentHealth.WithLabelValues("assets")

	SetComponentHealth("assets", true)
	assert.Equal(t, 1.0, testutil.ToFloat64(gauge))
	SetComponentHealth("assets", false)
	assert.Equal(t, 0.0, testutil.ToFloat64(gauge))
}
