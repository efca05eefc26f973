package pool_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontier/internal/telemetry"
	"github.com/katalvlaran/frontier/pool"
)

// TestForEach_CoversEveryIndexOnce fans out with no threshold and checks
// each index ran exactly once.
func TestForEach_CoversEveryIndexOnce(t *testing.T) {
	for _, workers := range []int{1, 2, 3, 8, 64} {
		p := pool.New(pool.WithWorkers(workers), pool.WithThreshold(0))
		const n = 1000
		hits := make([]atomic.Int32, n)

		err := p.ForEach(context.Background(), n, func(i int) error {
			hits[i].Add(1)
			return nil
		})
		require.NoError(t, err)
		for i := range hits {
			require.Equal(t, int32(1), hits[i].Load(), "workers=%d index=%d", workers, i)
		}
	}
}

// TestSequential_IndexOrder asserts the deterministic inline mode.
func TestSequential_IndexOrder(t *testing.T) {
	p := pool.Sequential()
	assert.Equal(t, 1, p.Workers())

	var order []int
	err := p.ForEach(context.Background(), 5, func(i int) error {
		order = append(order, i)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

// TestForEach_BelowThresholdRunsInline relies on an unsynchronized append;
// the race detector would flag it if the region fanned out.
func TestForEach_BelowThresholdRunsInline(t *testing.T) {
	p := pool.New(pool.WithWorkers(8), pool.WithThreshold(100))
	var order []int
	require.NoError(t, p.ForEach(context.Background(), 10, func(i int) error {
		order = append(order, i)
		return nil
	}))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, order)
}

func TestForEach_Empty(t *testing.T) {
	called := false
	err := pool.New().ForEach(context.Background(), 0, func(int) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestForEach_ErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	p := pool.New(pool.WithWorkers(4), pool.WithThreshold(0))
	err := p.ForEach(context.Background(), 100, func(i int) error {
		if i == 42 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
}

func TestForEach_PanicRecovered(t *testing.T) {
	p := pool.New(pool.WithWorkers(4), pool.WithThreshold(0), pool.WithLogger(telemetry.Discard()))
	err := p.ForEach(context.Background(), 10, func(i int) error {
		if i == 7 {
			panic("bad neighbor")
		}
		return nil
	})
	require.ErrorIs(t, err, pool.ErrTaskPanicked)

	err = pool.Sequential().ForEach(context.Background(), 1, func(int) error { panic("inline") })
	require.ErrorIs(t, err, pool.ErrTaskPanicked)
}

func TestForEach_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var ran atomic.Int32
	err := pool.New(pool.WithWorkers(4), pool.WithThreshold(0)).ForEach(ctx, 50, func(int) error {
		ran.Add(1)
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, ran.Load())
}

func TestOptions_IgnoreInvalid(t *testing.T) {
	p := pool.New(pool.WithWorkers(3), pool.WithWorkers(0), pool.WithThreshold(-1), pool.WithLogger(nil))
	assert.Equal(t, 3, p.Workers())
}
