package fetcher

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/alphalions/gallery/metrics"
	"github.com/alphalions/gallery/types"
)

// Shared collapses concurrent fetches of the same wallet into one upstream request.
// Results are handed to every waiting caller and then dropped; nothing is retained.
type Shared struct {
	next  Fetcher
	group singleflight.Group
}

var _ Fetcher = (*Shared)(nil)

func NewShared(next Fetcher) *Shared {
	return &Shared{next: next}
}

func (s *Shared) FetchNfts(ctx context.Context, wallet string) ([]types.Token, error) {
	key := strings.ToLower(strings.TrimSpace(wallet))
	if key == "" {
		return []types.Token{}, nil
	}

	// the shared request must not be cancelled by whichever caller started it
	ch := s.group.DoChan(key, func() (any, error) {
		defer metrics.RecoverFromPanic(component)
		return s.next.FetchNfts(context.WithoutCancel(ctx), wallet)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			metrics.TrackSharedFetch()
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]types.Token)), nil
	}
}
