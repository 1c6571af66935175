package gallery

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphalions/gallery/assets"
	"github.com/alphalions/gallery/fetcher"
	"github.com/alphalions/gallery/types"
)

func newResolver(t *testing.T) *assets.Resolver {
	t.Helper()
	b, err := assets.LoadBundle(fstest.MapFS{
		"glb/1.glb":        {Data: []byte("glb")},
		"fbx_output/2.fbx": {Data: []byte("fbx")},
		"picsart/01.png":   {Data: []byte("png")},
	})
	require.NoError(t, err)
	return assets.NewResolver(b, "")
}

func connected(t *testing.T, n int) *Session {
	t.Helper()
	f := &scriptedFetcher{}
	f.push("0xabc", tokens(n), nil)
	s := NewSession("s1", f, 12, discardLogger)
	require.NoError(t, s.Connect(context.Background(), "0xabc"))
	return s
}

func TestView_Disconnected(t *testing.T) {
	s := NewSession("s1", &scriptedFetcher{}, 12, discardLogger)
	v := s.View(types.FormatPFP, nil)

	assert.Equal(t, StateDisconnected, v.State)
	assert.Equal(t, DashboardTitle, v.Title)
	assert.Equal(t, ConnectPrompt, v.Subtitle)
	assert.Empty(t, v.Cards)
}

func TestView_Empty(t *testing.T) {
	s := connected(t, 0)
	// a nil resolver panics on use, so a clean render proves no asset was resolved
	v := s.View(types.FormatGLB, nil)

	assert.Equal(t, StateEmpty, v.State)
	assert.Equal(t, "Your GLB Collection", v.Title)
	assert.Equal(t, "0 NFTs in your wallet", v.Subtitle)
	assert.Equal(t, EmptyTitle, v.Message)
	assert.Equal(t, EmptyText, v.Hint)
	assert.Empty(t, v.Cards)
	assert.Empty(t, v.Pages)
}

func TestView_Error(t *testing.T) {
	f := fetcher.FetcherFunc(func(context.Context, string) ([]types.Token, error) {
		return nil, types.NewHTTPStatusError(503, "Service Unavailable")
	})
	s := NewSession("s1", f, 12, discardLogger)
	require.Error(t, s.Connect(context.Background(), "0xabc"))

	v := s.View(types.FormatPFP, nil)
	assert.Equal(t, StateError, v.State)
	assert.Equal(t, "Error Loading NFTs: API request failed: 503 - Service Unavailable", v.Message)
	assert.Equal(t, ErrorHint, v.Hint)
	assert.Empty(t, v.Cards)
}

func TestView_Loading(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	f := fetcher.FetcherFunc(func(context.Context, string) ([]types.Token, error) {
		close(started)
		<-release
		return tokens(1), nil
	})
	s := NewSession("s1", f, 12, discardLogger)
	done := make(chan error, 1)
	go func() { done <- s.Connect(context.Background(), "0xabc") }()
	<-started

	v := s.View(types.FormatPFP, nil)
	assert.Equal(t, StateLoading, v.State)
	assert.Equal(t, LoadingText, v.Subtitle)
	assert.Empty(t, v.Cards)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StateReady, s.View(types.FormatPFP, newResolver(t)).State)
}

func TestView_ReadyPaginates(t *testing.T) {
	s := connected(t, 30)
	r := newResolver(t)

	v := s.View(types.FormatPFP, r)
	assert.Equal(t, StateReady, v.State)
	assert.Equal(t, "Your PFP Collection", v.Title)
	assert.Equal(t, "30 NFTs in your wallet", v.Subtitle)
	assert.Len(t, v.Cards, 12)
	assert.Equal(t, 1, v.Page)
	assert.Equal(t, 3, v.TotalPages)
	assert.False(t, v.HasPrev)
	assert.True(t, v.HasNext)
	assert.Len(t, v.Pages, 3)

	s.NextPage()
	s.NextPage()
	v = s.View(types.FormatPFP, r)
	require.Len(t, v.Cards, 6)
	assert.Equal(t, "25", v.Cards[0].TokenId)
	assert.True(t, v.HasPrev)
	assert.False(t, v.HasNext)
}

func TestView_SinglePageHasNoPageBar(t *testing.T) {
	s := connected(t, 5)

	v := s.View(types.FormatGLB, newResolver(t))
	assert.Equal(t, StateReady, v.State)
	assert.Len(t, v.Cards, 5)
	assert.Equal(t, 1, v.Page)
	assert.Equal(t, 1, v.TotalPages)
	assert.NotNil(t, v.Pages)
	assert.Empty(t, v.Pages)
	assert.False(t, v.HasPrev)
	assert.False(t, v.HasNext)

	s = connected(t, 13)
	v = s.View(types.FormatGLB, newResolver(t))
	assert.Len(t, v.Pages, 2)
	assert.True(t, v.HasNext)
}

func TestNewCard(t *testing.T) {
	r := newResolver(t)
	tok := tokens(2)

	card := NewCard(tok[0], types.FormatGLB, r)
	assert.Equal(t, ModelAvailableText, card.Badge)
	assert.True(t, card.ModelAvailable)
	assert.True(t, card.DownloadEnabled)
	assert.Nil(t, card.Image)

	card = NewCard(tok[0], types.FormatFBX, r)
	assert.Equal(t, ModelMissingText, card.Badge)
	assert.False(t, card.DownloadEnabled)

	card = NewCard(tok[1], types.FormatFBX, r)
	assert.Equal(t, ModelAvailableText, card.Badge)

	card = NewCard(tok[0], types.FormatPixelArt, r)
	require.NotNil(t, card.Image)
	assert.Equal(t, "/assets/picsart/01.png", card.Image.Location)
	assert.True(t, card.DownloadEnabled)
	assert.Empty(t, card.Badge)
	assert.NotNil(t, card.Attributes)

	card = NewCard(tok[1], types.FormatPFP, r)
	require.NotNil(t, card.Image)
	assert.Equal(t, "https://img.example/2.png", card.Image.Location)
	assert.True(t, card.Image.Remote)
}
