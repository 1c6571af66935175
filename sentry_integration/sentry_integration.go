package sentry_integration

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/alphalions/gallery/config"
)

// Init configures the global Sentry hub. It is a no-op when no DSN is configured.
func Init(cfg *config.Config) error {
	sc := cfg.GetSentryConfig()
	if sc == nil {
		return nil
	}

	return sentry.Init(sentry.ClientOptions{
		Dsn:              sc.DSN,
		SampleRate:       sc.SampleRate,
		EnableTracing:    true,
		TracesSampleRate: sc.SampleRate,
		Environment:      sc.Environment,
		Release:          config.Version,
	})
}

// Flush waits for buffered events to be sent.
func Flush() {
	sentry.Flush(2 * time.Second)
}

func CaptureCurrentHubException(err error, level sentry.Level) {
	CaptureException(sentry.CurrentHub(), err, level)
}

func CaptureException(hub *sentry.Hub, err error, level sentry.Level) {
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(level)
		hub.CaptureException(err)
	})
}

func StartSentrySpan(ctx context.Context, operation, description string) (*sentry.Span, context.Context) {
	span := sentry.StartSpan(ctx, operation)
	span.Description = description
	return span, span.Context()
}
