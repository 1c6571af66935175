package assets

import (
	"math"

	"github.com/alphalions/gallery/types"
)

const (
	MinZoom     = 0.5
	MaxZoom     = 3.0
	ZoomStep    = 0.2
	DefaultZoom = 1.0
	NarrowZoom  = 1.5
	// NarrowViewportWidth is the width in pixels below which a viewport counts as narrow.
	NarrowViewportWidth = 768
)

// Zoom is the magnification of an image preview, always within [MinZoom, MaxZoom].
type Zoom struct {
	level float64
}

// OpenZoom is the zoom a preview opens with.
func OpenZoom(narrow bool) Zoom {
	if narrow {
		return Zoom{level: NarrowZoom}
	}
	return Zoom{level: DefaultZoom}
}

// ZoomAt restores a zoom level received from a client, clamped into range.
func ZoomAt(level float64) Zoom {
	if math.IsNaN(level) {
		return Zoom{level: DefaultZoom}
	}
	return Zoom{level: clampZoom(level)}
}

func (z Zoom) Level() float64 { return z.level }

func (z Zoom) In() Zoom  { return Zoom{level: clampZoom(z.level + ZoomStep)} }
func (z Zoom) Out() Zoom { return Zoom{level: clampZoom(z.level - ZoomStep)} }

func clampZoom(level float64) float64 {
	level = math.Round(level*100) / 100
	return math.Max(MinZoom, math.Min(MaxZoom, level))
}

type Kind string

const (
	KindImage Kind = "image"
	KindModel Kind = "model"
)

// Preview describes what the enlarged view of a token shows.
type Preview struct {
	Reference
	Name string `json:"name" extensions:"x-order:5"`
	Kind Kind   `json:"kind" extensions:"x-order:6"`
	// Zoom is only set for image previews; models are navigated in a 3D viewer.
	Zoom *float64 `json:"zoom,omitempty" extensions:"x-order:7"`
}

// Preview describes the enlarged view of token in format, zoomed to z.
func (r *Resolver) Preview(token types.Token, format types.Format, z Zoom) Preview {
	p := Preview{
		Reference: r.Resolve(token, format),
		Name:      token.DisplayName(format),
		Kind:      KindImage,
	}
	if format.Is3D() {
		p.Kind = KindModel
		return p
	}
	level := z.Level()
	p.Zoom = &level
	return p
}
