package query

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lanterntools/lantern/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCachesValue(t *testing.T) {
	c := NewCache(time.Minute, nil)

	calls := 0
	fetch := func(ctx context.Context) (interface{}, error) {
		calls++
		return "payload", nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.Get(context.Background(), "k", fetch)
		require.NoError(t, err)
		assert.Equal(t, "payload", v)
	}
	assert.Equal(t, 1, calls, "fresh key must fetch once")
}

func TestExpiredEntryRefetches(t *testing.T) {
	c := NewCache(time.Minute, nil)

	calls := 0
	fetch := func(ctx context.Context) (interface{}, error) {
		calls++
		return calls, nil
	}

	v, err := c.Get(context.Background(), "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	base := time.Now()
	c.now = func() time.Time { return base.Add(2 * time.Minute) }

	v, err = c.Get(context.Background(), "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, v, "stale entry must refetch")
}

func TestErrorsAreNotCached(t *testing.T) {
	c := NewCache(time.Minute, nil)

	calls := 0
	fetch := func(ctx context.Context) (interface{}, error) {
		calls++
		if calls == 1 {
			return nil, fmt.Errorf("transient")
		}
		return "ok", nil
	}

	_, err := c.Get(context.Background(), "k", fetch)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeQueryFailed))

	v, err := c.Get(context.Background(), "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, calls)
}

func TestConcurrentGetsShareOneFetch(t *testing.T) {
	c := NewCache(time.Minute, nil)

	var calls int32
	gate := make(chan struct{})
	fetch := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		<-gate
		return "shared", nil
	}

	const waiters = 8
	var wg sync.WaitGroup
	results := make([]interface{}, waiters)
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.Get(context.Background(), "k", fetch)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	// Let the goroutines pile up on the single in-flight fetch.
	time.Sleep(20 * time.Millisecond)
	close(gate)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, v := range results {
		assert.Equal(t, "shared", v)
	}
}

func TestCanceledWaiter(t *testing.T) {
	c := NewCache(time.Minute, nil)

	gate := make(chan struct{})
	go func() {
		c.Get(context.Background(), "k", func(ctx context.Context) (interface{}, error) {
			<-gate
			return "late", nil
		})
	}()

	// Wait for the fetch slot to appear, then join it with a context that
	// is already canceled.
	for c.Len() == 0 {
		time.Sleep(time.Millisecond)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Get(ctx, "k", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeQueryCanceled))

	close(gate)
}

func TestInvalidate(t *testing.T) {
	c := NewCache(time.Minute, nil)

	calls := 0
	fetch := func(ctx context.Context) (interface{}, error) {
		calls++
		return calls, nil
	}

	_, err := c.Get(context.Background(), "k", fetch)
	require.NoError(t, err)

	c.Invalidate("k")
	v, err := c.Get(context.Background(), "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestInvalidateAll(t *testing.T) {
	c := NewCache(time.Minute, nil)

	fetch := func(ctx context.Context) (interface{}, error) { return "v", nil }
	_, _ = c.Get(context.Background(), "a", fetch)
	_, _ = c.Get(context.Background(), "b", fetch)
	require.Equal(t, 2, c.Len())

	c.InvalidateAll()
	assert.Equal(t, 0, c.Len())
}
