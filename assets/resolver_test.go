package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphalions/gallery/types"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	b, err := LoadBundle(testBundleFS())
	require.NoError(t, err)
	return NewResolver(b, "")
}

func token(id string) types.Token {
	return types.Token{
		TokenId: id,
		Metadata: types.Metadata{
			Name:     "Alpha Lion #" + id,
			ImageUrl: "https://img.example/" + id + ".png",
		},
	}
}

func TestResolve(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name      string
		token     types.Token
		format    types.Format
		location  string
		remote    bool
		available bool
	}{
		{"pfp uses metadata image", token("7"), types.FormatPFP, "https://img.example/7.png", true, true},
		{"pfp without image url", types.Token{TokenId: "7"}, types.FormatPFP, "", true, false},
		{"pixel art padded id", token("007"), types.FormatPixelArt, "/assets/picsart/7.png", false, true},
		{"pixel art padded file", token("12"), types.FormatPixelArt, "/assets/picsart/0012.png", false, true},
		{"glb present", token("7"), types.FormatGLB, "/assets/glb/7.glb", false, true},
		{"glb absent", token("9"), types.FormatGLB, "", false, false},
		{"fbx present", token("9"), types.FormatFBX, "/assets/fbx_output/9.fbx", false, true},
		{"fbx absent", token("7"), types.FormatFBX, "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := r.Resolve(tt.token, tt.format)
			assert.Equal(t, tt.format, ref.Format)
			assert.Equal(t, tt.token.TokenId, ref.TokenId)
			assert.Equal(t, tt.location, ref.Location)
			assert.Equal(t, tt.remote, ref.Remote)
			assert.Equal(t, tt.available, ref.Available)
		})
	}
}

func TestAvailability_IndependentPerFormat(t *testing.T) {
	r := newTestResolver(t)

	assert.Equal(t, map[types.Format]bool{
		types.FormatPFP:      true,
		types.FormatPixelArt: true,
		types.FormatGLB:      true,
		types.FormatFBX:      false,
	}, r.Availability(token("7")))

	assert.Equal(t, map[types.Format]bool{
		types.FormatPFP:      true,
		types.FormatPixelArt: false,
		types.FormatGLB:      false,
		types.FormatFBX:      true,
	}, r.Availability(token("9")))
}

func TestNewResolver_NilBundle(t *testing.T) {
	r := NewResolver(nil, "/static")
	ref := r.Resolve(token("7"), types.FormatGLB)
	assert.False(t, ref.Available)
	assert.Empty(t, ref.Location)
}
