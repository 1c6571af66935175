package types

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Attribute is one trait of a token, kept in upstream order.
type Attribute struct {
	TraitType string `json:"trait_type" extensions:"x-order:0"`
	Value     string `json:"value" extensions:"x-order:1"`
}

// UnmarshalJSON accepts string, number and boolean trait values and keeps their text.
// Any other value is kept as its raw JSON.
func (a *Attribute) UnmarshalJSON(data []byte) error {
	var raw struct {
		TraitType json.RawMessage `json:"trait_type"`
		Value     json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.TraitType = scalarText(raw.TraitType)
	a.Value = scalarText(raw.Value)
	return nil
}

func scalarText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// looseInt decodes a number, a numeric string or null. Anything else decodes to 0.
type looseInt int64

func (n *looseInt) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(scalarText(data))
	if text == "" {
		*n = 0
		return nil
	}
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		*n = looseInt(v)
		return nil
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		*n = looseInt(f)
		return nil
	}
	*n = 0
	return nil
}

// Metadata is the token's off-chain metadata. It is never modified after decoding.
type Metadata struct {
	Name        string      `json:"name" extensions:"x-order:0"`
	Description string      `json:"description" extensions:"x-order:1"`
	Image       string      `json:"image" extensions:"x-order:2"`
	ImageUrl    string      `json:"image_url" extensions:"x-order:3"`
	Attributes  []Attribute `json:"attributes" extensions:"x-order:4"`
	Dna         string      `json:"dna" extensions:"x-order:5"`
	Edition     int64       `json:"edition" extensions:"x-order:6"`
	Date        int64       `json:"date" extensions:"x-order:7"`
	Compiler    string      `json:"compiler" extensions:"x-order:8"`
}

// Token is one NFT owned by the queried wallet.
type Token struct {
	ContractAddress string   `json:"contract_address" extensions:"x-order:0"`
	TokenStandard   string   `json:"token_standard" extensions:"x-order:1"`
	TokenId         string   `json:"token_id" extensions:"x-order:2"`
	Chain           string   `json:"chain" extensions:"x-order:3"`
	ChainId         int64    `json:"chain_id" extensions:"x-order:4"`
	Name            string   `json:"name" extensions:"x-order:5"`
	Symbol          string   `json:"symbol" extensions:"x-order:6"`
	Metadata        Metadata `json:"metadata" extensions:"x-order:7"`
	Balance         string   `json:"balance" extensions:"x-order:8"`
	LastAcquired    string   `json:"last_acquired" extensions:"x-order:9"`
}

// UnmarshalJSON tolerates edition and date sent as strings.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	type metadata Metadata
	aux := struct {
		*metadata
		Edition looseInt `json:"edition"`
		Date    looseInt `json:"date"`
	}{metadata: (*metadata)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	m.Edition = int64(aux.Edition)
	m.Date = int64(aux.Date)
	return nil
}

// DisplayName returns the metadata name, falling back to the format's generic name.
func (t Token) DisplayName(format Format) string {
	if t.Metadata.Name != "" {
		return t.Metadata.Name
	}
	return format.FallbackName()
}

// NftsResponse is the envelope returned by the remote NFT API.
type NftsResponse struct {
	Wallet   string  `json:"wallet"`
	Contract string  `json:"contract"`
	Total    int64   `json:"total"`
	Nfts     []Token `json:"nfts"`
}

// ErrorResponse is the best-effort error body of a failed NFT API call.
type ErrorResponse struct {
	Error string `json:"error"`
}
