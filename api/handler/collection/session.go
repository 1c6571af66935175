package collection

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/alphalions/gallery/api/handler/common"
	"github.com/alphalions/gallery/gallery"
	"github.com/alphalions/gallery/types"
)

// GetSession handles GET /gallery/v1/session
// @Summary Get gallery view
// @Description Get the caller's gallery in the given format: state, header texts, the cards of the current page and the page bar
// @Tags Gallery
// @Produce json
// @Param X-Session-Id header string false "Session id"
// @Param format query string false "Download format" Enums(PFP, PIXEL_ART, GLB, FBX) default(PFP)
// @Success 200 {object} gallery.View
// @Router /gallery/v1/session [get]
func (h *CollectionHandler) GetSession(c *fiber.Ctx) error {
	format, err := common.GetFormatQuery(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	session := h.BaseHandler.GetSession(c)
	return c.JSON(session.View(format, h.GetResolver()))
}

// Connect handles POST /gallery/v1/session/connect
// @Summary Connect wallet
// @Description Connect a wallet to the session and load its collection. A failed load is reported in the returned view, not as an error status. An empty wallet disconnects.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param X-Session-Id header string false "Session id"
// @Param format query string false "Download format" Enums(PFP, PIXEL_ART, GLB, FBX) default(PFP)
// @Param request body ConnectRequest true "Wallet to connect"
// @Success 200 {object} gallery.View
// @Router /gallery/v1/session/connect [post]
func (h *CollectionHandler) Connect(c *fiber.Ctx) error {
	req, err := ParseConnectRequest(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	format, err := common.GetFormatQuery(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	session := h.BaseHandler.GetSession(c)
	h.load(session, session.Connect(c.UserContext(), req.Wallet))
	return c.JSON(session.View(format, h.GetResolver()))
}

// Refresh handles POST /gallery/v1/session/refresh
// @Summary Reload collection
// @Description Refetch the connected wallet's collection
// @Tags Gallery
// @Produce json
// @Param X-Session-Id header string false "Session id"
// @Param format query string false "Download format" Enums(PFP, PIXEL_ART, GLB, FBX) default(PFP)
// @Success 200 {object} gallery.View
// @Router /gallery/v1/session/refresh [post]
func (h *CollectionHandler) Refresh(c *fiber.Ctx) error {
	format, err := common.GetFormatQuery(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	session := h.BaseHandler.GetSession(c)
	h.load(session, session.Refresh(c.UserContext()))
	return c.JSON(session.View(format, h.GetResolver()))
}

// Disconnect handles POST /gallery/v1/session/disconnect
// @Summary Disconnect wallet
// @Description Forget the connected wallet and its collection
// @Tags Gallery
// @Produce json
// @Param X-Session-Id header string false "Session id"
// @Success 200 {object} gallery.View
// @Router /gallery/v1/session/disconnect [post]
func (h *CollectionHandler) Disconnect(c *fiber.Ctx) error {
	format, err := common.GetFormatQuery(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	session := h.BaseHandler.GetSession(c)
	session.Disconnect()
	return c.JSON(session.View(format, h.GetResolver()))
}

// NextPage handles POST /gallery/v1/session/page/next
// @Summary Next page
// @Description Move to the next page; stays on the last page
// @Tags Gallery
// @Produce json
// @Param X-Session-Id header string false "Session id"
// @Param format query string false "Download format" Enums(PFP, PIXEL_ART, GLB, FBX) default(PFP)
// @Success 200 {object} gallery.View
// @Router /gallery/v1/session/page/next [post]
func (h *CollectionHandler) NextPage(c *fiber.Ctx) error {
	return h.page(c, func(s *gallery.Session) error {
		s.NextPage()
		return nil
	})
}

// PrevPage handles POST /gallery/v1/session/page/prev
// @Summary Previous page
// @Description Move to the previous page; stays on the first page
// @Tags Gallery
// @Produce json
// @Param X-Session-Id header string false "Session id"
// @Param format query string false "Download format" Enums(PFP, PIXEL_ART, GLB, FBX) default(PFP)
// @Success 200 {object} gallery.View
// @Router /gallery/v1/session/page/prev [post]
func (h *CollectionHandler) PrevPage(c *fiber.Ctx) error {
	return h.page(c, func(s *gallery.Session) error {
		s.PrevPage()
		return nil
	})
}

// SelectPage handles POST /gallery/v1/session/page/{page}
// @Summary Select page
// @Description Jump to a page between 1 and the page count
// @Tags Gallery
// @Produce json
// @Param X-Session-Id header string false "Session id"
// @Param page path int true "Page number"
// @Param format query string false "Download format" Enums(PFP, PIXEL_ART, GLB, FBX) default(PFP)
// @Success 200 {object} gallery.View
// @Router /gallery/v1/session/page/{page} [post]
func (h *CollectionHandler) SelectPage(c *fiber.Ctx) error {
	page, err := common.GetPageParam(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return h.page(c, func(s *gallery.Session) error {
		return s.SelectPage(page)
	})
}

func (h *CollectionHandler) page(c *fiber.Ctx, move func(s *gallery.Session) error) error {
	format, err := common.GetFormatQuery(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	session := h.BaseHandler.GetSession(c)
	if err := move(session); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, types.Message(err))
	}
	return c.JSON(session.View(format, h.GetResolver()))
}

// load logs the outcome of a collection load. Failures are part of the session state.
func (h *CollectionHandler) load(session *gallery.Session, err error) {
	if err == nil || errors.Is(err, gallery.ErrSuperseded) {
		return
	}
	h.TrackError("fetch_nfts")
	h.GetLogger().Warn("failed to load collection",
		slog.String("session_id", session.Id()),
		slog.String("error", err.Error()))
}
