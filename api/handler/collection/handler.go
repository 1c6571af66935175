package collection

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alphalions/gallery/api/handler/common"
)

type CollectionHandler struct {
	*common.BaseHandler
}

var _ common.HandlerRegistrar = (*CollectionHandler)(nil)

func NewCollectionHandler(base *common.BaseHandler) *CollectionHandler {
	return &CollectionHandler{BaseHandler: base}
}

func (h *CollectionHandler) Register(router fiber.Router) {
	v1 := router.Group("/gallery/v1")

	// Session routes
	session := v1.Group("/session")
	session.Get("", h.GetSession)
	session.Post("/connect", h.Connect)
	session.Post("/disconnect", h.Disconnect)
	session.Post("/refresh", h.Refresh)
	session.Post("/page/next", h.NextPage)
	session.Post("/page/prev", h.PrevPage)
	session.Post("/page/:page", h.SelectPage)

	// Token asset routes
	tokens := v1.Group("/tokens")
	tokens.Get("/:token_id/download", h.Download)
	tokens.Get("/:token_id/preview", h.Preview)
}
