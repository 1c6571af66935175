package status

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/alphalions/gallery/api/cache"
	"github.com/alphalions/gallery/api/handler/common"
)

type StatusHandler struct {
	*common.BaseHandler
}

var _ common.HandlerRegistrar = (*StatusHandler)(nil)

func NewStatusHandler(base *common.BaseHandler) *StatusHandler {
	return &StatusHandler{BaseHandler: base}
}

func (h *StatusHandler) Register(router fiber.Router) {
	v1 := router.Group("/gallery/v1")
	v1.Get("/formats", cache.Static(time.Hour), h.GetFormats)
	v1.Get("/chain", cache.Static(time.Hour), h.GetChain)
}
