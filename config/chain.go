package config

import (
	"fmt"
	"net/url"

	"github.com/alphalions/gallery/types"
)

const (
	DefaultChainId     = 33139
	DefaultChainName   = "ApeChain"
	DefaultRpcUrl      = "https://apechain.calderachain.xyz/http"
	DefaultExplorerUrl = "https://apechain.calderaexplorer.xyz/"
)

// NativeCurrency describes the chain's gas token.
type NativeCurrency struct {
	Name     string `json:"name" extensions:"x-order:0"`
	Symbol   string `json:"symbol" extensions:"x-order:1"`
	Decimals int    `json:"decimals" extensions:"x-order:2"`
}

// ChainConfig is the chain the wallet connector is expected to be on.
type ChainConfig struct {
	ChainId        int64          `json:"chain_id" extensions:"x-order:0"`
	Name           string         `json:"name" extensions:"x-order:1"`
	NativeCurrency NativeCurrency `json:"native_currency" extensions:"x-order:2"`
	RpcUrl         string         `json:"rpc_url" extensions:"x-order:3"`
	ExplorerUrl    string         `json:"explorer_url" extensions:"x-order:4"`
	Testnet        bool           `json:"testnet" extensions:"x-order:5"`
}

func (cc ChainConfig) Validate() error {
	if cc.ChainId <= 0 {
		return types.NewValidationError("CHAIN_ID", "must be positive")
	}

	if len(cc.Name) == 0 {
		return types.NewValidationError("CHAIN_NAME", "required field is missing")
	}

	if len(cc.RpcUrl) == 0 {
		return types.NewValidationError("RPC_URL", "required field is missing")
	}
	if u, err := url.Parse(cc.RpcUrl); err != nil {
		return types.NewValidationError("RPC_URL", fmt.Sprintf("invalid URL format: %s", cc.RpcUrl))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		return types.NewValidationError("RPC_URL", fmt.Sprintf("must use http or https scheme, got: %s", u.Scheme))
	}

	if len(cc.ExplorerUrl) > 0 {
		if u, err := url.Parse(cc.ExplorerUrl); err != nil {
			return types.NewInvalidValueError("EXPLORER_URL", cc.ExplorerUrl, fmt.Sprintf("invalid URL: %v", err))
		} else if u.Scheme != "http" && u.Scheme != "https" {
			return types.NewInvalidValueError("EXPLORER_URL", cc.ExplorerUrl, fmt.Sprintf("must use http or https scheme, got: %s", u.Scheme))
		}
	}

	return nil
}
