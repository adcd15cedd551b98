package counter

import (
	"context"
	"sync"
	"sync/atomic"
)

type Repository interface {
	// GetNextValue returns the next value for counterType, starting at 1.
	// Values are strictly increasing and never handed out twice.
	GetNextValue(ctx context.Context, counterType string) (int64, error)
}

type repository struct {
	mu       sync.Mutex
	counters map[string]*atomic.Int64
}

func NewRepository() Repository {
	return &repository{counters: make(map[string]*atomic.Int64)}
}

func (r *repository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.counter(counterType).Add(1), nil
}

func (r *repository) counter(counterType string) *atomic.Int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.counters[counterType]
	if !ok {
		c = &atomic.Int64{}
		r.counters[counterType] = c
	}
	return c
}
