package common

import (
	"fmt"
	"strconv"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v2"

	"github.com/alphalions/gallery/assets"
	"github.com/alphalions/gallery/types"
)

const (
	SessionHeader = "X-Session-Id"
	SessionCookie = "gallery_session"

	ViewportNarrow = "narrow"
	ViewportWide   = "wide"

	ZoomIn  = "in"
	ZoomOut = "out"
)

func GetParams(c *fiber.Ctx, key string) (string, error) {
	value := c.Params(key)
	if value == "" {
		return "", fmt.Errorf("missing parameter: %s", key)
	}
	return value, nil
}

func GetTokenIdParam(c *fiber.Ctx) (string, error) {
	tokenId, err := GetParams(c, "token_id")
	if err != nil {
		return "", err
	}
	if assets.NormalizeTokenId(tokenId) == "" {
		return "", fmt.Errorf("invalid token_id: %s", tokenId)
	}
	return tokenId, nil
}

func GetPageParam(c *fiber.Ctx) (int, error) {
	value, err := GetParams(c, "page")
	if err != nil {
		return 0, err
	}

	page, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid page: %s", err.Error())
	}
	return page, nil
}

// GetFormatQuery parses the format query parameter. An absent format selects PFP.
func GetFormatQuery(c *fiber.Ctx) (types.Format, error) {
	format, err := types.ParseFormat(c.Query("format"))
	if err != nil {
		return "", fmt.Errorf("invalid format: %s", types.Message(err))
	}
	return format, nil
}

// GetViewportQuery reports whether the caller has a narrow viewport. Absent means wide.
func GetViewportQuery(c *fiber.Ctx) (bool, error) {
	switch strings.ToLower(c.Query("viewport", ViewportWide)) {
	case ViewportNarrow:
		return true, nil
	case ViewportWide:
		return false, nil
	default:
		return false, fmt.Errorf("invalid viewport: must be %s or %s", ViewportNarrow, ViewportWide)
	}
}

// GetZoomQuery resolves the preview zoom from the optional current zoom and step action.
// Without a current zoom the preview opens at the viewport's default.
func GetZoomQuery(c *fiber.Ctx, narrow bool) (assets.Zoom, error) {
	zoom := assets.OpenZoom(narrow)
	if raw := c.Query("zoom"); raw != "" {
		level, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return zoom, fmt.Errorf("invalid zoom: %s", err.Error())
		}
		zoom = assets.ZoomAt(level)
	}

	switch strings.ToLower(c.Query("action")) {
	case "":
		return zoom, nil
	case ZoomIn:
		return zoom.In(), nil
	case ZoomOut:
		return zoom.Out(), nil
	default:
		return zoom, fmt.Errorf("invalid action: must be %s or %s", ZoomIn, ZoomOut)
	}
}

// ValidateWallet checks that wallet is an EVM address and returns it trimmed.
func ValidateWallet(wallet string) (string, error) {
	wallet = strings.TrimSpace(wallet)
	if wallet == "" {
		return "", nil
	}
	if !ethcommon.IsHexAddress(wallet) {
		return "", fmt.Errorf("invalid wallet: %s", wallet)
	}
	return wallet, nil
}
