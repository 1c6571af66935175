package status

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alphalions/gallery/types"
)

// GetFormats handles GET /gallery/v1/formats
// @Summary List download formats
// @Description Get the download formats in display order with their descriptions
// @Tags Gallery
// @Produce json
// @Success 200 {object} FormatsResponse
// @Router /gallery/v1/formats [get]
func (h *StatusHandler) GetFormats(c *fiber.Ctx) error {
	bundle := h.GetResolver().Bundle()

	resp := FormatsResponse{Formats: make([]FormatResponse, 0, len(types.Formats))}
	for _, f := range types.Formats {
		resp.Formats = append(resp.Formats, FormatResponse{
			Format:      f,
			Label:       f.Label(),
			Description: f.Description(),
			Extension:   f.Extension(),
			Is3D:        f.Is3D(),
			Bundled:     bundle.Count(f),
		})
	}
	return c.JSON(resp)
}

// GetChain handles GET /gallery/v1/chain
// @Summary Chain configuration
// @Description Get the chain a wallet must be connected to, and the collection contract
// @Tags Gallery
// @Produce json
// @Success 200 {object} ChainResponse
// @Router /gallery/v1/chain [get]
func (h *StatusHandler) GetChain(c *fiber.Ctx) error {
	return c.JSON(ChainResponse{
		Chain:           *h.GetChainConfig(),
		ContractAddress: h.GetConfig().GetUpstreamConfig().ContractAddress,
	})
}
