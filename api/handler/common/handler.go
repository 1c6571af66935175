package common

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/alphalions/gallery/assets"
	"github.com/alphalions/gallery/config"
	"github.com/alphalions/gallery/gallery"
	"github.com/alphalions/gallery/metrics"
)

type HandlerRegistrar interface {
	Register(router fiber.Router)
}

type BaseHandler struct {
	cfg        *config.Config
	logger     *slog.Logger
	store      *gallery.Store
	resolver   *assets.Resolver
	downloader *assets.Downloader
}

func NewBaseHandler(
	cfg *config.Config,
	logger *slog.Logger,
	store *gallery.Store,
	resolver *assets.Resolver,
	downloader *assets.Downloader,
) *BaseHandler {
	return &BaseHandler{
		cfg:        cfg,
		logger:     logger,
		store:      store,
		resolver:   resolver,
		downloader: downloader,
	}
}

func (h *BaseHandler) GetConfig() *config.Config           { return h.cfg }
func (h *BaseHandler) GetLogger() *slog.Logger             { return h.logger }
func (h *BaseHandler) GetResolver() *assets.Resolver       { return h.resolver }
func (h *BaseHandler) GetDownloader() *assets.Downloader   { return h.downloader }
func (h *BaseHandler) GetChainConfig() *config.ChainConfig { return h.cfg.GetChainConfig() }

// GetSession returns the caller's session, creating one when the request carries no
// live session id. The id is echoed back in a header and a cookie.
func (h *BaseHandler) GetSession(c *fiber.Ctx) *gallery.Session {
	id := c.Get(SessionHeader)
	if id == "" {
		id = c.Cookies(SessionCookie)
	}

	session, created := h.store.GetOrCreate(id)
	if created {
		c.Cookie(&fiber.Cookie{
			Name:     SessionCookie,
			Value:    session.Id(),
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			MaxAge:   int(h.cfg.GetSessionTTL().Seconds()),
		})
	}
	c.Set(SessionHeader, session.Id())
	return session
}

// TrackError tracks errors in handlers
func (h *BaseHandler) TrackError(errorType string) {
	metrics.TrackError("api", errorType)
}
