package fetcher

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphalions/gallery/types"
)

func TestShared_CollapsesConcurrentFetches(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	next := FetcherFunc(func(ctx context.Context, wallet string) ([]types.Token, error) {
		calls.Add(1)
		<-release
		return []types.Token{{TokenId: "1"}, {TokenId: "2"}}, nil
	})
	shared := NewShared(next)

	const callers = 5
	var wg sync.WaitGroup
	results := make([][]types.Token, callers)
	started := make(chan struct{}, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			started <- struct{}{}
			tokens, err := shared.FetchNfts(context.Background(), "0xABC")
			assert.NoError(t, err)
			results[i] = tokens
		}(i)
	}
	for i := 0; i < callers; i++ {
		<-started
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, calls.Load(), int32(callers))
	for _, tokens := range results {
		require.Len(t, tokens, 2)
	}

	// each caller owns its slice
	results[0][0] = types.Token{TokenId: "changed"}
	assert.Equal(t, "1", results[1][0].TokenId)
}

func TestShared_PropagatesErrorsAndEmptyWallet(t *testing.T) {
	boom := errors.New("boom")
	shared := NewShared(FetcherFunc(func(ctx context.Context, wallet string) ([]types.Token, error) {
		return nil, boom
	}))

	_, err := shared.FetchNfts(context.Background(), "0xabc")
	assert.ErrorIs(t, err, boom)

	tokens, err := shared.FetchNfts(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}
