package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/alphalions/gallery/api/handler/collection"
	"github.com/alphalions/gallery/api/handler/common"
	"github.com/alphalions/gallery/api/handler/status"
	"github.com/alphalions/gallery/assets"
	"github.com/alphalions/gallery/config"
	"github.com/alphalions/gallery/gallery"
)

func Register(
	router fiber.Router,
	cfg *config.Config,
	logger *slog.Logger,
	store *gallery.Store,
	resolver *assets.Resolver,
	downloader *assets.Downloader,
) {
	base := common.NewBaseHandler(cfg, logger, store, resolver, downloader)
	handlers := []common.HandlerRegistrar{
		status.NewStatusHandler(base),
		collection.NewCollectionHandler(base),
	}

	for _, handler := range handlers {
		handler.Register(router)
	}
}
