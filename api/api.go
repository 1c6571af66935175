package api

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"github.com/alphalions/gallery/api/docs"
	"github.com/alphalions/gallery/api/handler"
	"github.com/alphalions/gallery/assets"
	"github.com/alphalions/gallery/config"
	"github.com/alphalions/gallery/gallery"
	"github.com/alphalions/gallery/metrics"
	"github.com/alphalions/gallery/sentry_integration"
)

const shutdownTimeout = 10 * time.Second

type Api struct {
	app    *fiber.App
	cfg    *config.Config
	logger *slog.Logger
}

// @title Alpha Lions Gallery API
// @version 1.0
// @description Browse the Alpha Lions NFTs of a wallet and download them as PFP, pixel art, GLB or FBX
// @BasePath /

// @tag.name Gallery
// @tag.description Wallet session, gallery view and token downloads
func New(
	cfg *config.Config,
	logger *slog.Logger,
	store *gallery.Store,
	resolver *assets.Resolver,
	downloader *assets.Downloader,
) *Api {
	app := fiber.New(fiber.Config{
		AppName:               "Alpha Lions Gallery API",
		DisableStartupMessage: true,
	})

	app.Use(recover.New(recover.Config{
		EnableStackTrace:  true,
		StackTraceHandler: stackTraceHandler(logger),
	}))
	addMetrics(app)
	addCORS(app, cfg, logger)

	app.Get("/health", health)

	// Packaged asset bundle
	app.Use(assets.DefaultBaseURL, filesystem.New(filesystem.Config{
		Root:   http.FS(resolver.Bundle().FS()),
		MaxAge: int((24 * time.Hour).Seconds()),
	}))

	handler.Register(app, cfg, logger, store, resolver, downloader)

	// Swagger documentation
	swaggerConfig := swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
		TagsSorter: template.JS(`function(a, b) {
			const order = ["Gallery", "App"];
			return order.indexOf(a) - order.indexOf(b);
		}`),
	}

	app.Get("/swagger/*", swagger.New(swaggerConfig))

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.GetListenPort())
	docs.SwaggerInfo.Title = "Alpha Lions Gallery API"
	docs.SwaggerInfo.Version = config.Version

	return &Api{
		app:    app,
		cfg:    cfg,
		logger: logger,
	}
}

// App exposes the underlying fiber app, for tests.
func (a *Api) App() *fiber.App {
	return a.app
}

func (a *Api) Start() error {
	port := a.cfg.GetListenPort()
	a.logger.Info("starting API server", slog.String("addr", fmt.Sprintf("http://localhost:%s", port)))

	return a.app.Listen(":" + port)
}

// Shutdown stops accepting connections and waits for in-flight requests to finish.
func (a *Api) Shutdown() error {
	return a.app.ShutdownWithTimeout(shutdownTimeout)
}

// health handles GET /health
// @Summary Health check
// @Tags App
// @Success 200 "OK"
// @Router /health [get]
func health(c *fiber.Ctx) error {
	return c.SendString("OK")
}

func stackTraceHandler(logger *slog.Logger) func(c *fiber.Ctx, e any) {
	return func(c *fiber.Ctx, e any) {
		metrics.TrackPanic("api")
		sentry_integration.CaptureCurrentHubException(fmt.Errorf("panic in %s %s: %v", c.Method(), c.Path(), e), sentry.LevelFatal)
		logger.Error("recovered from panic",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Any("panic", e))
	}
}
