package counter_test

import (
	"context"
	"sync"
	"testing"

	"go-leave/internal/shared/counter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetNextValue(t *testing.T) {
	ctx := context.Background()

	t.Run("sequential per type", func(t *testing.T) {
		repo := counter.NewRepository()

		a1, _ := repo.GetNextValue(ctx, "a")
		a2, _ := repo.GetNextValue(ctx, "a")
		b1, _ := repo.GetNextValue(ctx, "b")

		assert.Equal(t, int64(1), a1)
		assert.Equal(t, int64(2), a2)
		assert.Equal(t, int64(1), b1)
	})

	t.Run("concurrent values are unique", func(t *testing.T) {
		repo := counter.NewRepository()
		const n = 200

		var (
			mu   sync.Mutex
			seen = make(map[int64]bool, n)
			wg   sync.WaitGroup
		)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := repo.GetNextValue(ctx, "leave_request")
				assert.NoError(t, err)
				mu.Lock()
				seen[v] = true
				mu.Unlock()
			}()
		}
		wg.Wait()

		require.Len(t, seen, n)
		for i := int64(1); i <= n; i++ {
			assert.True(t, seen[i], "missing %d", i)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		repo := counter.NewRepository()
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := repo.GetNextValue(cctx, "a")
		assert.ErrorIs(t, err, context.Canceled)

		v, err := repo.GetNextValue(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, int64(1), v)
	})
}
