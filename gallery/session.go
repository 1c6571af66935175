package gallery

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/alphalions/gallery/assets"
	"github.com/alphalions/gallery/fetcher"
	"github.com/alphalions/gallery/metrics"
	"github.com/alphalions/gallery/pagination"
	"github.com/alphalions/gallery/types"
)

// ErrSuperseded is returned by a load whose result was discarded because the session moved
// on to another wallet or a newer request while it was in flight.
var ErrSuperseded = errors.New("request superseded by a newer one")

// Session fetch outcomes, used as metric labels.
const (
	fetchSuccess    = "success"
	fetchError      = "error"
	fetchSuperseded = "superseded"
)

// Session is one viewer's gallery: the connected wallet, its collection and the current page.
// The collection is replaced wholesale on every fetch and never edited in place.
type Session struct {
	mu sync.RWMutex

	id         string
	wallet     string
	tokens     []types.Token
	loading    bool
	errMsg     string
	generation uint64
	pager      *pagination.Paginator

	fetcher fetcher.Fetcher
	logger  *slog.Logger
}

func NewSession(id string, f fetcher.Fetcher, pageSize int, logger *slog.Logger) *Session {
	return &Session{
		id:      id,
		tokens:  []types.Token{},
		pager:   pagination.New(pageSize),
		fetcher: f,
		logger:  logger.With("session_id", id),
	}
}

func (s *Session) Id() string { return s.id }

// Connect switches the session to wallet and loads its collection. An empty wallet clears
// the session without any fetch.
func (s *Session) Connect(ctx context.Context, wallet string) error {
	wallet = strings.TrimSpace(wallet)
	if wallet == "" {
		s.Disconnect()
		return nil
	}

	gen := s.begin(wallet)
	return s.load(ctx, gen, wallet)
}

// Refresh refetches the connected wallet's collection.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.RLock()
	wallet := s.wallet
	s.mu.RUnlock()

	return s.Connect(ctx, wallet)
}

// Disconnect forgets the wallet and everything derived from it. Any load in flight is
// discarded when it completes.
func (s *Session) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.wallet = ""
	s.tokens = []types.Token{}
	s.loading = false
	s.errMsg = ""
	s.pager.SetTotal(0)
	s.pager.Reset()
}

func (s *Session) begin(wallet string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.wallet = wallet
	s.loading = true
	return s.generation
}

func (s *Session) load(ctx context.Context, gen uint64, wallet string) error {
	tokens, err := s.fetcher.FetchNfts(ctx, wallet)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || wallet != s.wallet {
		metrics.TrackSessionFetch(fetchSuperseded)
		s.logger.Debug("discarding superseded response", slog.String("wallet", wallet))
		return ErrSuperseded
	}
	s.loading = false

	if err != nil {
		metrics.TrackSessionFetch(fetchError)
		s.tokens = []types.Token{}
		s.errMsg = types.Message(err)
		s.pager.SetTotal(0)
		s.pager.Reset()
		return err
	}

	metrics.TrackSessionFetch(fetchSuccess)
	s.tokens = tokens
	s.errMsg = ""
	s.pager.SetTotal(len(tokens))
	s.pager.Reset()
	return nil
}

func (s *Session) NextPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pager.Next()
}

func (s *Session) PrevPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pager.Prev()
}

func (s *Session) SelectPage(page int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pager.Select(page)
}

// Token finds a token of the current collection by id. Ids are compared after normalization,
// so "007" and "7" name the same token.
func (s *Session) Token(tokenId string) (types.Token, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := assets.NormalizeTokenId(tokenId)
	for _, t := range s.tokens {
		if assets.NormalizeTokenId(t.TokenId) == want {
			return t, true
		}
	}
	return types.Token{}, false
}

// Snapshot is a consistent copy of a session's state.
type Snapshot struct {
	Wallet     string
	Tokens     []types.Token
	Loading    bool
	Error      string
	Page       int
	PageSize   int
	TotalPages int
}

func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Wallet:     s.wallet,
		Tokens:     slices.Clone(s.tokens),
		Loading:    s.loading,
		Error:      s.errMsg,
		Page:       s.pager.Page(),
		PageSize:   s.pager.Size(),
		TotalPages: s.pager.TotalPages(),
	}
}
