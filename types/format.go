package types

import (
	"fmt"
	"strings"
)

// Format is one of the downloadable output kinds of a token.
type Format string

const (
	FormatPFP      Format = "PFP"
	FormatPixelArt Format = "PIXEL_ART"
	FormatGLB      Format = "GLB"
	FormatFBX      Format = "FBX"
)

// Formats lists the supported formats in display order.
var Formats = []Format{FormatPFP, FormatPixelArt, FormatGLB, FormatFBX}

var formatInfo = map[Format]struct {
	label       string
	description string
	extension   string
	fallback    string
	contentType string
}{
	FormatPFP:      {"PFP", "High Quality PNG (2048×2024)", ".png", "nft-image", "image/png"},
	FormatPixelArt: {"Pixel Art", "Pixelated Version of Alpha Lions", ".png", "nft-pixelart", "image/png"},
	FormatGLB:      {"GLB", "For Metaverse", ".glb", "nft-model", "model/gltf-binary"},
	FormatFBX:      {"FBX", "For Animation", ".fbx", "nft-model", "application/octet-stream"},
}

// ParseFormat accepts the canonical value or the display label, case-insensitively.
// An empty string selects PFP.
func ParseFormat(s string) (Format, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FormatPFP, nil
	}
	key := strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_").Replace(s))
	f := Format(key)
	if _, ok := formatInfo[f]; !ok {
		return "", NewInvalidValueError("format", s, fmt.Sprintf("must be one of %s", strings.Join(formatLabels(), ", ")))
	}
	return f, nil
}

func formatLabels() []string {
	labels := make([]string, 0, len(Formats))
	for _, f := range Formats {
		labels = append(labels, f.Label())
	}
	return labels
}

func (f Format) Label() string       { return formatInfo[f].label }
func (f Format) Description() string { return formatInfo[f].description }
func (f Format) Extension() string   { return formatInfo[f].extension }
func (f Format) ContentType() string { return formatInfo[f].contentType }

// FallbackName is the filename stem used when a token has no display name.
func (f Format) FallbackName() string { return formatInfo[f].fallback }

// Is3D reports whether the format is a 3D model.
func (f Format) Is3D() bool {
	return f == FormatGLB || f == FormatFBX
}
