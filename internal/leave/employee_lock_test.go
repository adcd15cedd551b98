package leave

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmployeeLock(t *testing.T) {
	t.Run("serializes same employee", func(t *testing.T) {
		locks := newEmployeeLock()
		counter := 0

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := locks.Lock("E001")
				defer unlock()
				v := counter
				counter = v + 1
			}()
		}
		wg.Wait()

		assert.Equal(t, 50, counter)
		assert.Empty(t, locks.locks)
	})

	t.Run("different employees do not block", func(t *testing.T) {
		locks := newEmployeeLock()

		unlockA := locks.Lock("E001")
		unlockB := locks.Lock("E002")
		assert.Len(t, locks.locks, 2)

		unlockA()
		unlockB()
		assert.Empty(t, locks.locks)
	})
}
