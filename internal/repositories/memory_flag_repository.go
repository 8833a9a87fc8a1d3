package repositories

import (
	"context"
	"sync"
)

type memoryFlagRepository struct {
	mu    sync.RWMutex
	flags map[string]string
}

// NewMemoryFlagRepository creates a flag repository that keeps flags in process memory
func NewMemoryFlagRepository() *memoryFlagRepository {
	return &memoryFlagRepository{
		flags: make(map[string]string),
	}
}

func (r *memoryFlagRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.flags[key]
	return value, ok, nil
}

func (r *memoryFlagRepository) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flags[key] = value
	return nil
}

func (r *memoryFlagRepository) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.flags, key)
	return nil
}
