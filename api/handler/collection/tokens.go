package collection

import (
	"context"
	"errors"
	"mime"

	"github.com/gofiber/fiber/v2"

	"github.com/alphalions/gallery/api/handler/common"
	"github.com/alphalions/gallery/assets"
	"github.com/alphalions/gallery/types"
)

// Download handles GET /gallery/v1/tokens/{token_id}/download
// @Summary Download token asset
// @Description Download a token of the connected wallet in the given format. Failures return a notification.
// @Tags Gallery
// @Produce octet-stream
// @Produce json
// @Param X-Session-Id header string false "Session id"
// @Param token_id path string true "Token id"
// @Param format query string false "Download format" Enums(PFP, PIXEL_ART, GLB, FBX) default(PFP)
// @Success 200 {file} file
// @Failure 404 {object} assets.Notification
// @Failure 422 {object} assets.Notification
// @Failure 502 {object} assets.Notification
// @Router /gallery/v1/tokens/{token_id}/download [get]
func (h *CollectionHandler) Download(c *fiber.Ctx) error {
	req, err := ParseTokenRequest(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	session := h.BaseHandler.GetSession(c)
	token, ok := session.Token(req.TokenId)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(assets.Notification{
			Level:   assets.LevelError,
			Message: ErrTokenNotInWallet,
		})
	}

	payload, err := h.GetDownloader().Download(c.UserContext(), token, req.Format)
	if err != nil {
		h.TrackError("download_" + assets.Outcome(err))
		return c.Status(downloadStatus(err)).JSON(assets.Notify(err))
	}

	c.Set(fiber.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": payload.Filename}))
	c.Set(fiber.HeaderContentType, payload.ContentType)
	c.Set(NotificationHeader, assets.Started(payload).Message)
	return c.Send(payload.Data)
}

// Preview handles GET /gallery/v1/tokens/{token_id}/preview
// @Summary Preview token
// @Description Describe the enlarged view of a token. Image previews open at zoom 1.5 on narrow viewports and 1.0 otherwise, and step by 0.2 within [0.5, 3.0].
// @Tags Gallery
// @Produce json
// @Param X-Session-Id header string false "Session id"
// @Param token_id path string true "Token id"
// @Param format query string false "Download format" Enums(PFP, PIXEL_ART, GLB, FBX) default(PFP)
// @Param viewport query string false "Viewport class" Enums(narrow, wide) default(wide)
// @Param zoom query number false "Current zoom"
// @Param action query string false "Zoom step" Enums(in, out)
// @Success 200 {object} assets.Preview
// @Router /gallery/v1/tokens/{token_id}/preview [get]
func (h *CollectionHandler) Preview(c *fiber.Ctx) error {
	req, err := ParsePreviewRequest(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	zoom, err := common.GetZoomQuery(c, req.Narrow)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	session := h.BaseHandler.GetSession(c)
	token, ok := session.Token(req.TokenId)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, ErrTokenNotInWallet)
	}

	return c.JSON(h.GetResolver().Preview(token, req.Format, zoom))
}

func downloadStatus(err error) int {
	switch {
	case types.IsType(err, types.ErrTypeAssetNotFound):
		return fiber.StatusNotFound
	case types.IsType(err, types.ErrTypeEmptyPayload):
		return fiber.StatusUnprocessableEntity
	case types.IsType(err, types.ErrTypeNetwork):
		return fiber.StatusBadGateway
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusRequestTimeout
	default:
		return fiber.StatusInternalServerError
	}
}
