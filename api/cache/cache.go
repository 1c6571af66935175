package cache

import (
	"slices"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
)

// Config holds response cache configuration
type Config struct {
	// Expiration time for the cache
	Expiration time.Duration
	// IncludeQueryParams determines if query parameters should be included in cache key
	IncludeQueryParams bool
	// CacheControl also lets clients cache the response for Expiration
	CacheControl bool
	// MaxBytes bounds the total size of cached bodies, 0 means unbounded
	MaxBytes uint
}

// DefaultConfig returns a default cache configuration
func DefaultConfig() Config {
	return Config{
		Expiration:         time.Second,
		IncludeQueryParams: true,
	}
}

// New creates a response cache middleware. Only GET and HEAD responses are cached.
func New(cfg Config) fiber.Handler {
	if cfg.Expiration <= 0 {
		cfg.Expiration = time.Second
	}

	cacheConfig := cache.Config{
		Expiration:   cfg.Expiration,
		CacheControl: cfg.CacheControl,
		MaxBytes:     cfg.MaxBytes,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.Method() + ":" + c.Path()
		},
	}

	if cfg.IncludeQueryParams {
		cacheConfig.KeyGenerator = func(c *fiber.Ctx) string {
			// Params are sorted so ?a=1&b=2 and ?b=2&a=1 share an entry.
			var params []string
			c.Request().URI().QueryArgs().VisitAll(func(key, value []byte) {
				params = append(params, string(key)+"="+string(value))
			})
			if len(params) == 0 {
				return c.Method() + ":" + c.Path()
			}
			slices.Sort(params)
			return c.Method() + ":" + c.Path() + "?" + strings.Join(params, "&")
		}
	}

	return cache.New(cacheConfig)
}

// Static caches responses that only change on restart, for clients too.
func Static(expiration time.Duration) fiber.Handler {
	cfg := DefaultConfig()
	cfg.Expiration = expiration
	cfg.CacheControl = true
	return New(cfg)
}
