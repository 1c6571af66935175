package api

import (
	"errors"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/alphalions/gallery/api/handler/collection"
	"github.com/alphalions/gallery/api/handler/common"
	"github.com/alphalions/gallery/config"
	"github.com/alphalions/gallery/metrics"
)

const (
	corsAllowMethods = "GET,POST,OPTIONS,HEAD"
)

var (
	corsAllowHeaders  = []string{fiber.HeaderOrigin, fiber.HeaderContentType, fiber.HeaderAccept, common.SessionHeader}
	corsExposeHeaders = []string{common.SessionHeader, collection.NotificationHeader, fiber.HeaderContentDisposition}
)

func addMetrics(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		metrics.AddRequestsInFlight(1)
		defer metrics.AddRequestsInFlight(-1)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		metrics.TrackHTTPRequest(c.Method(), c.Path(), status, time.Since(start))
		return err
	})
}

// addCORS installs the CORS middleware. A wildcard origin list never allows credentials.
func addCORS(app *fiber.App, cfg *config.Config, logger *slog.Logger) {
	corsCfg := cfg.GetCORSConfig()
	if corsCfg == nil || !corsCfg.Enabled {
		return
	}

	corsConfig := cors.Config{
		AllowMethods:     corsAllowMethods,
		AllowHeaders:     strings.Join(corsAllowHeaders, ","),
		ExposeHeaders:    strings.Join(corsExposeHeaders, ","),
		AllowCredentials: corsCfg.AllowCredentials,
		MaxAge:           corsCfg.MaxAge,
	}

	if hasWildcard(corsCfg.AllowOrigins) {
		if corsConfig.AllowCredentials {
			logger.Warn("CORS credentials disabled because all origins are allowed")
			corsConfig.AllowCredentials = false
		}
		corsConfig.AllowOrigins = "*"
	} else {
		allowed := corsCfg.AllowOrigins
		corsConfig.AllowOriginsFunc = func(origin string) bool {
			return originAllowed(origin, allowed)
		}
	}

	logger.Info("CORS enabled",
		slog.Any("allow_origins", corsCfg.AllowOrigins),
		slog.Bool("allow_credentials", corsConfig.AllowCredentials),
		slog.String("max_age", strconv.Itoa(corsCfg.MaxAge)))

	app.Use(cors.New(corsConfig))
}

func hasWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// originAllowed matches origin against exact origins and subdomain patterns. A pattern
// "*.example.com" (optionally with a scheme) matches any subdomain but not example.com itself.
func originAllowed(origin string, allowed []string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())

	for _, pattern := range allowed {
		pattern = strings.ToLower(strings.TrimSpace(pattern))

		scheme := ""
		if i := strings.Index(pattern, "://"); i >= 0 {
			scheme, pattern = pattern[:i], pattern[i+3:]
		}
		if scheme != "" && scheme != strings.ToLower(u.Scheme) {
			continue
		}

		if suffix, ok := strings.CutPrefix(pattern, "*."); ok {
			if strings.HasSuffix(host, "."+suffix) {
				return true
			}
			continue
		}

		if scheme != "" && pattern == strings.ToLower(u.Host) {
			return true
		}
		if scheme == "" && (pattern == strings.ToLower(u.Host) || pattern == host) {
			return true
		}
	}
	return false
}
