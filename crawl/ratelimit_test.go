package crawl_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/omnidocs"
	"github.com/fwojciec/omnidocs/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	intro  omnidocs.PageRef = "https://docs.example.com/guide/intro"
	setup  omnidocs.PageRef = "https://docs.example.com/guide/setup"
	other  omnidocs.PageRef = "https://other.example.com/guide"
	ported omnidocs.PageRef = "https://docs.example.com:8443/guide"
)

func TestHostLimiter(t *testing.T) {
	t.Parallel()

	t.Run("first load is immediate", func(t *testing.T) {
		t.Parallel()

		l := crawl.NewHostLimiter(10)

		start := time.Now()
		require.NoError(t, l.Wait(context.Background(), intro))
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("pages of one host share a bucket", func(t *testing.T) {
		t.Parallel()

		l := crawl.NewHostLimiter(10)
		require.NoError(t, l.Wait(context.Background(), intro))

		start := time.Now()
		require.NoError(t, l.Wait(context.Background(), setup))
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})

	t.Run("hosts are spaced independently", func(t *testing.T) {
		t.Parallel()

		l := crawl.NewHostLimiter(10)
		require.NoError(t, l.Wait(context.Background(), intro))

		start := time.Now()
		require.NoError(t, l.Wait(context.Background(), other))
		require.NoError(t, l.Wait(context.Background(), ported))
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("burst lets loads start back to back", func(t *testing.T) {
		t.Parallel()

		l := crawl.NewHostLimiter(1, crawl.WithBurst(3))

		start := time.Now()
		for range 3 {
			require.NoError(t, l.Wait(context.Background(), intro))
		}
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("zero rate never waits", func(t *testing.T) {
		t.Parallel()

		l := crawl.NewHostLimiter(0)

		start := time.Now()
		for range 20 {
			require.NoError(t, l.Wait(context.Background(), intro))
		}
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("ending context is a cancellation", func(t *testing.T) {
		t.Parallel()

		l := crawl.NewHostLimiter(1)
		require.NoError(t, l.Wait(context.Background(), intro))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := l.Wait(ctx, setup)
		assert.Equal(t, omnidocs.ECANCELED, omnidocs.ErrorCode(err))
	})

	t.Run("concurrent waiters all get through", func(t *testing.T) {
		t.Parallel()

		l := crawl.NewHostLimiter(100)

		var wg sync.WaitGroup
		var completed atomic.Int32
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if l.Wait(context.Background(), intro) == nil {
					completed.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(5), completed.Load())
	})
}
