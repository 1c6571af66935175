package status

import (
	"github.com/alphalions/gallery/config"
	"github.com/alphalions/gallery/types"
)

type FormatResponse struct {
	Format      types.Format `json:"format" extensions:"x-order:0"`
	Label       string       `json:"label" extensions:"x-order:1"`
	Description string       `json:"description" extensions:"x-order:2"`
	Extension   string       `json:"extension" extensions:"x-order:3"`
	Is3D        bool         `json:"is_3d" extensions:"x-order:4"`
	// Bundled is the number of tokens with a packaged asset; PFP images are always remote.
	Bundled int `json:"bundled" extensions:"x-order:5"`
}

type FormatsResponse struct {
	Formats []FormatResponse `json:"formats" extensions:"x-order:0"`
}

type ChainResponse struct {
	Chain           config.ChainConfig `json:"chain" extensions:"x-order:0"`
	ContractAddress string             `json:"contract_address" extensions:"x-order:1"`
}
