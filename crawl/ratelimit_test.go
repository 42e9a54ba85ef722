package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/hboone/quotemill/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("spaces requests within a domain", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(50)

		start := time.Now()
		for i := 0; i < 3; i++ {
			require.NoError(t, limiter.Wait(context.Background(), "site.test"))
		}
		// 50 rps with burst 1: two waits of ~20ms after the first token.
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("domains are limited independently", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(1)

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "a.test"))
		require.NoError(t, limiter.Wait(context.Background(), "b.test"))
		require.NoError(t, limiter.Wait(context.Background(), "c.test"))
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("canceled context aborts the wait", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(0.001)
		require.NoError(t, limiter.Wait(context.Background(), "slow.test"))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		assert.Error(t, limiter.Wait(ctx, "slow.test"))
	})
}
