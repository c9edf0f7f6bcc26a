package hub_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/utils/test/assert"
)

func TestDependencies(t *testing.T) {
	t.Run("Should register and run the loader", func(t *testing.T) {
		deps := hub.NewDependencies()

		var runs int32
		assert.Nil(t, deps.Load(context.Background(), "datasets", func(ctx context.Context) error {
			atomic.AddInt32(&runs, 1)
			return nil
		}))

		assert.Equal(t, int32(1), atomic.LoadInt32(&runs))

		assert.Nil(t, deps.Reload(context.Background()))
		assert.Equal(t, int32(2), atomic.LoadInt32(&runs))
	})

	t.Run("Should treat a refreshed session as a successful load", func(t *testing.T) {
		deps := hub.NewDependencies()

		err := deps.Load(context.Background(), "summary", func(ctx context.Context) error {
			return fmt.Errorf("load failed: %w", hub.ErrSessionRefreshed)
		})
		assert.Nil(t, err)
	})

	t.Run("Should return other load errors", func(t *testing.T) {
		deps := hub.NewDependencies()

		err := deps.Load(context.Background(), "summary", func(ctx context.Context) error {
			return errors.New("something bad happened")
		})
		assert.Equal(t, errors.New("something bad happened"), err)
	})

	t.Run("Should rerun every registered loader on reload", func(t *testing.T) {
		deps := hub.NewDependencies()

		var summaryRuns, datasetsRuns int32
		assert.Nil(t, deps.Load(context.Background(), "summary", func(ctx context.Context) error {
			atomic.AddInt32(&summaryRuns, 1)
			return nil
		}))
		assert.Nil(t, deps.Load(context.Background(), "datasets", func(ctx context.Context) error {
			atomic.AddInt32(&datasetsRuns, 1)
			return nil
		}))

		assert.Nil(t, deps.Reload(context.Background()))
		assert.Equal(t, int32(2), atomic.LoadInt32(&summaryRuns))
		assert.Equal(t, int32(2), atomic.LoadInt32(&datasetsRuns))
	})

	t.Run("Should replace a loader registered under the same key", func(t *testing.T) {
		deps := hub.NewDependencies()

		var first, second int32
		assert.Nil(t, deps.Load(context.Background(), "dataset", func(ctx context.Context) error {
			atomic.AddInt32(&first, 1)
			return nil
		}))
		assert.Nil(t, deps.Load(context.Background(), "dataset", func(ctx context.Context) error {
			atomic.AddInt32(&second, 1)
			return nil
		}))

		assert.Nil(t, deps.Reload(context.Background()))
		assert.Equal(t, int32(1), atomic.LoadInt32(&first))
		assert.Equal(t, int32(2), atomic.LoadInt32(&second))
	})

	t.Run("Should return the reload error", func(t *testing.T) {
		deps := hub.NewDependencies()

		var calls int32
		assert.Nil(t, deps.Load(context.Background(), "summary", func(ctx context.Context) error {
			if atomic.AddInt32(&calls, 1) > 1 {
				return errors.New("reload failed")
			}
			return nil
		}))

		assert.Equal(t, errors.New("reload failed"), deps.Reload(context.Background()))
	})
}
