package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphalions/gallery/api/handler/collection"
	"github.com/alphalions/gallery/api/handler/common"
	"github.com/alphalions/gallery/api/handler/status"
	"github.com/alphalions/gallery/assets"
	"github.com/alphalions/gallery/config"
	"github.com/alphalions/gallery/fetcher"
	"github.com/alphalions/gallery/gallery"
	"github.com/alphalions/gallery/types"
)

const testWallet = "0x8420B95bEac664b6E8E89978C3fDCaA1A71c8350"

type testServer struct {
	api     *Api
	session string
}

func newTestServer(t *testing.T, f fetcher.Fetcher) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.NewTestConfig()

	bundle, err := assets.LoadBundle(fstest.MapFS{
		"picsart/1.png":     {Data: []byte("pixel-1")},
		"glb/001.glb":       {Data: []byte("glb-1")},
		"glb/2.glb":         {Data: []byte{}},
		"fbx_output/3.fbx":  {Data: []byte("fbx-3")},
		"fbx_output/20.fbx": {Data: []byte("fbx-20")},
	})
	require.NoError(t, err)

	resolver := assets.NewResolver(bundle, "")
	downloader := assets.NewDownloader(resolver, time.Second, logger)
	store := gallery.NewStore(f, cfg.GetPageSize(), cfg.GetSessionCacheSize(), cfg.GetSessionTTL(), logger)

	return &testServer{api: New(cfg, logger, store, resolver, downloader)}
}

func (s *testServer) do(t *testing.T, method, target string, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, _ := http.NewRequestWithContext(context.Background(), method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.session != "" {
		req.Header.Set(common.SessionHeader, s.session)
	}

	resp, err := s.api.App().Test(req, -1)
	require.NoError(t, err)
	if id := resp.Header.Get(common.SessionHeader); id != "" {
		s.session = id
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func ownedTokens(n int) fetcher.FetcherFunc {
	return func(_ context.Context, wallet string) ([]types.Token, error) {
		out := make([]types.Token, n)
		for i := range out {
			id := fmt.Sprintf("%d", i+1)
			out[i] = types.Token{TokenId: id, Metadata: types.Metadata{Name: "Alpha Lion #" + id}}
		}
		return out, nil
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, ownedTokens(0))
	resp := s.do(t, http.MethodGet, "/health", "")
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
}

func TestFormatsAndChain(t *testing.T) {
	s := newTestServer(t, ownedTokens(0))

	formats := decode[status.FormatsResponse](t, s.do(t, http.MethodGet, "/gallery/v1/formats", ""))
	require.Len(t, formats.Formats, 4)
	assert.Equal(t, types.FormatPFP, formats.Formats[0].Format)
	assert.Equal(t, "High Quality PNG (2048×2024)", formats.Formats[0].Description)
	assert.Equal(t, 2, formats.Formats[2].Bundled)
	assert.True(t, formats.Formats[3].Is3D)

	chain := decode[status.ChainResponse](t, s.do(t, http.MethodGet, "/gallery/v1/chain", ""))
	assert.Equal(t, int64(33139), chain.Chain.ChainId)
	assert.Equal(t, "APE", chain.Chain.NativeCurrency.Symbol)
	assert.Equal(t, 18, chain.Chain.NativeCurrency.Decimals)
	assert.Equal(t, config.DefaultContractAddress, chain.ContractAddress)
}

func TestSessionFlow(t *testing.T) {
	s := newTestServer(t, ownedTokens(30))

	view := decode[gallery.View](t, s.do(t, http.MethodGet, "/gallery/v1/session", ""))
	assert.Equal(t, gallery.StateDisconnected, view.State)
	require.NotEmpty(t, s.session)

	resp := s.do(t, http.MethodPost, "/gallery/v1/session/connect?format=GLB", `{"wallet":"`+testWallet+`"}`)
	view = decode[gallery.View](t, resp)
	assert.Equal(t, gallery.StateReady, view.State)
	assert.Equal(t, "Your GLB Collection", view.Title)
	assert.Equal(t, "30 NFTs in your wallet", view.Subtitle)
	assert.Len(t, view.Cards, 12)
	assert.Equal(t, gallery.ModelAvailableText, view.Cards[0].Badge)
	assert.Equal(t, gallery.ModelMissingText, view.Cards[2].Badge)

	view = decode[gallery.View](t, s.do(t, http.MethodPost, "/gallery/v1/session/page/next", ""))
	assert.Equal(t, 2, view.Page)

	view = decode[gallery.View](t, s.do(t, http.MethodPost, "/gallery/v1/session/page/3", ""))
	assert.Equal(t, 3, view.Page)
	assert.Len(t, view.Cards, 6)

	resp = s.do(t, http.MethodPost, "/gallery/v1/session/page/4", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	view = decode[gallery.View](t, s.do(t, http.MethodPost, "/gallery/v1/session/page/prev", ""))
	assert.Equal(t, 2, view.Page)

	view = decode[gallery.View](t, s.do(t, http.MethodPost, "/gallery/v1/session/refresh", ""))
	assert.Equal(t, 1, view.Page, "a new collection starts on the first page")

	view = decode[gallery.View](t, s.do(t, http.MethodPost, "/gallery/v1/session/disconnect", ""))
	assert.Equal(t, gallery.StateDisconnected, view.State)
	assert.Empty(t, view.Cards)
}

func TestConnect_InvalidWallet(t *testing.T) {
	s := newTestServer(t, ownedTokens(1))

	resp := s.do(t, http.MethodPost, "/gallery/v1/session/connect", `{"wallet":"0x1234"}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/gallery/v1/session/connect?format=OBJ", `{"wallet":"`+testWallet+`"}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestConnect_FetchFailureShowsErrorState(t *testing.T) {
	s := newTestServer(t, fetcher.FetcherFunc(func(context.Context, string) ([]types.Token, error) {
		return nil, types.NewHTTPStatusError(http.StatusServiceUnavailable, "Service Unavailable")
	}))

	resp := s.do(t, http.MethodPost, "/gallery/v1/session/connect", `{"wallet":"`+testWallet+`"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	view := decode[gallery.View](t, resp)
	assert.Equal(t, gallery.StateError, view.State)
	assert.Contains(t, view.Message, "API request failed: 503 - Service Unavailable")
	assert.Empty(t, view.Cards)
}

func TestDownload(t *testing.T) {
	s := newTestServer(t, ownedTokens(4))
	decode[gallery.View](t, s.do(t, http.MethodPost, "/gallery/v1/session/connect", `{"wallet":"`+testWallet+`"}`))

	resp := s.do(t, http.MethodGet, "/gallery/v1/tokens/1/download?format=GLB", "")
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "glb-1", string(body))
	assert.Equal(t, "model/gltf-binary", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Alpha Lion #1.glb"`, resp.Header.Get("Content-Disposition"))
	assert.Equal(t, "Download started for Alpha Lion #1 GLB!", resp.Header.Get(collection.NotificationHeader))

	tests := []struct {
		name    string
		target  string
		status  int
		message string
	}{
		{"glb missing", "/gallery/v1/tokens/3/download?format=GLB", http.StatusNotFound, "GLB file not found for this token."},
		{"glb empty", "/gallery/v1/tokens/2/download?format=GLB", http.StatusUnprocessableEntity, "No 3D model available."},
		{"fbx missing", "/gallery/v1/tokens/1/download?format=FBX", http.StatusNotFound, "FBX file not found for this token."},
		{"pixel art missing", "/gallery/v1/tokens/4/download?format=PIXEL_ART", http.StatusNotFound, "Pixel Art image not found for this token."},
		{"token not owned", "/gallery/v1/tokens/20/download?format=FBX", http.StatusNotFound, collection.ErrTokenNotInWallet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := s.do(t, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.status, resp.StatusCode)
			n := decode[assets.Notification](t, resp)
			assert.Equal(t, assets.LevelError, n.Level)
			assert.Equal(t, tt.message, n.Message)
		})
	}
}

func TestPreview(t *testing.T) {
	s := newTestServer(t, ownedTokens(3))
	decode[gallery.View](t, s.do(t, http.MethodPost, "/gallery/v1/session/connect", `{"wallet":"`+testWallet+`"}`))

	p := decode[assets.Preview](t, s.do(t, http.MethodGet, "/gallery/v1/tokens/001/preview?format=PIXEL_ART&viewport=narrow", ""))
	assert.Equal(t, assets.KindImage, p.Kind)
	require.NotNil(t, p.Zoom)
	assert.Equal(t, 1.5, *p.Zoom)
	assert.Equal(t, "/assets/picsart/1.png", p.Location)

	p = decode[assets.Preview](t, s.do(t, http.MethodGet, "/gallery/v1/tokens/1/preview?format=PIXEL_ART&zoom=2.9&action=in", ""))
	require.NotNil(t, p.Zoom)
	assert.Equal(t, 3.0, *p.Zoom)

	p = decode[assets.Preview](t, s.do(t, http.MethodGet, "/gallery/v1/tokens/1/preview?format=GLB", ""))
	assert.Equal(t, assets.KindModel, p.Kind)
	assert.Nil(t, p.Zoom)

	resp := s.do(t, http.MethodGet, "/gallery/v1/tokens/1/preview?viewport=tiny", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStaticAssets(t *testing.T) {
	s := newTestServer(t, ownedTokens(0))

	resp := s.do(t, http.MethodGet, "/assets/picsart/1.png", "")
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pixel-1", string(body))

	resp = s.do(t, http.MethodGet, "/assets/picsart/9.png", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDownload_FilenameHeader(t *testing.T) {
	s := newTestServer(t, fetcher.FetcherFunc(func(context.Context, string) ([]types.Token, error) {
		return []types.Token{
			{TokenId: "1", Metadata: types.Metadata{Name: "Lion Été"}},
			{TokenId: "3", Metadata: types.Metadata{Name: `Lion "King" #3`}},
		}, nil
	}))
	decode[gallery.View](t, s.do(t, http.MethodPost, "/gallery/v1/session/connect", `{"wallet":"`+testWallet+`"}`))

	tests := []struct {
		target      string
		disposition string
	}{
		{"/gallery/v1/tokens/3/download?format=FBX", `attachment; filename="Lion _King_ #3.fbx"`},
		{"/gallery/v1/tokens/1/download?format=GLB", `attachment; filename*=utf-8''Lion%20%C3%89t%C3%A9.glb`},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			resp := s.do(t, http.MethodGet, tt.target, "")
			resp.Body.Close()
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.disposition, resp.Header.Get("Content-Disposition"))
		})
	}
}
