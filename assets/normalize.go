package assets

import "strings"

// NormalizeTokenId canonicalizes a token id for asset lookup: surrounding whitespace is
// trimmed and leading zeros are stripped. An id made only of zeros normalizes to "0".
func NormalizeTokenId(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}
	trimmed := strings.TrimLeft(id, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
