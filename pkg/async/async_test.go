package async_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate/pkg/async"
)

func TestGo(t *testing.T) {
	t.Parallel()

	t.Run("returns result", func(t *testing.T) {
		t.Parallel()
		f := async.Go(context.Background(), func(context.Context) (string, error) {
			return "done", nil
		})
		res, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, "done", res)
		assert.True(t, f.IsComplete())
	})

	t.Run("propagates error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		f := async.Go(context.Background(), func(context.Context) (int, error) {
			return 0, boom
		})
		_, err := f.Await()
		assert.ErrorIs(t, err, boom)
	})

	t.Run("recovers panic", func(t *testing.T) {
		t.Parallel()
		f := async.Go(context.Background(), func(context.Context) (int, error) {
			panic("kaboom")
		})
		res, err := f.Await()
		require.ErrorIs(t, err, async.ErrPanic)
		assert.Contains(t, err.Error(), "kaboom")
		assert.Zero(t, res)
	})

	t.Run("passes context through", func(t *testing.T) {
		t.Parallel()
		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "v")
		f := async.Go(ctx, func(ctx context.Context) (any, error) {
			return ctx.Value(key{}), nil
		})
		res, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, "v", res)
	})
}

func TestResolved(t *testing.T) {
	f := async.Resolved(42)
	assert.True(t, f.IsComplete())
	res, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, 42, res)
}

func TestAll(t *testing.T) {
	t.Parallel()

	t.Run("keeps input order", func(t *testing.T) {
		t.Parallel()
		delays := []time.Duration{30 * time.Millisecond, 0, 10 * time.Millisecond}
		futures := make([]*async.Future[int], len(delays))
		for i, d := range delays {
			futures[i] = async.Go(context.Background(), func(context.Context) (int, error) {
				time.Sleep(d)
				return i, nil
			})
		}

		results := async.All(futures...)
		require.Len(t, results, 3)
		for i, r := range results {
			assert.NoError(t, r.Err)
			assert.Equal(t, i, r.Value)
		}
	})

	t.Run("waits for every future even after an error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		slow := async.Go(context.Background(), func(context.Context) (string, error) {
			time.Sleep(20 * time.Millisecond)
			return "slow", nil
		})
		failing := async.Go(context.Background(), func(context.Context) (string, error) {
			return "", boom
		})

		results := async.All(failing, slow)
		assert.ErrorIs(t, results[0].Err, boom)
		assert.Equal(t, "slow", results[1].Value)
		assert.True(t, slow.IsComplete())
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, async.All[int]())
	})
}

func TestCollect(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	inFlight, peak := 0, 0
	items := []int{1, 2, 3, 4}

	start := time.Now()
	results := async.Collect(context.Background(), items, func(_ context.Context, n int) (int, error) {
		mu.Lock()
		inFlight++
		if inFlight > peak {
			peak = inFlight
		}
		mu.Unlock()

		time.Sleep(50 * time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()
		return n * 2, nil
	})

	require.Len(t, results, len(items))
	for i, r := range results {
		assert.Equal(t, items[i]*2, r.Value)
	}
	assert.Greater(t, peak, 1, "items should run concurrently")
	assert.Less(t, time.Since(start), 190*time.Millisecond)
}
