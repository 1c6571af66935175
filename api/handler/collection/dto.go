package collection

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/alphalions/gallery/api/handler/common"
	"github.com/alphalions/gallery/types"
)

// NotificationHeader carries the success notification of a download.
const NotificationHeader = "X-Gallery-Notification"

// ConnectRequest is the body of POST /gallery/v1/session/connect
type ConnectRequest struct {
	Wallet string `json:"wallet" extensions:"x-order:0"`
}

type TokenRequest struct {
	TokenId string
	Format  types.Format
}

type PreviewRequest struct {
	TokenRequest
	Narrow bool
}

func ParseConnectRequest(c *fiber.Ctx) (*ConnectRequest, error) {
	var req ConnectRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fmt.Errorf("%s: %s", ErrInvalidRequestBody, err.Error())
	}

	wallet, err := common.ValidateWallet(req.Wallet)
	if err != nil {
		return nil, err
	}
	req.Wallet = wallet
	return &req, nil
}

func ParseTokenRequest(c *fiber.Ctx) (*TokenRequest, error) {
	tokenId, err := common.GetTokenIdParam(c)
	if err != nil {
		return nil, err
	}

	format, err := common.GetFormatQuery(c)
	if err != nil {
		return nil, err
	}

	return &TokenRequest{TokenId: tokenId, Format: format}, nil
}

func ParsePreviewRequest(c *fiber.Ctx) (*PreviewRequest, error) {
	tokenReq, err := ParseTokenRequest(c)
	if err != nil {
		return nil, err
	}

	narrow, err := common.GetViewportQuery(c)
	if err != nil {
		return nil, err
	}

	return &PreviewRequest{TokenRequest: *tokenReq, Narrow: narrow}, nil
}
