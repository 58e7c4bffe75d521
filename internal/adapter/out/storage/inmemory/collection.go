package inmemory

import (
	"context"
	"sync"

	"socialapi/internal/adapter/out/storage"
	"socialapi/internal/service"
	"socialapi/pkg/pagination"
)

// Collection keeps records in insertion order. Soft-deleted records stay in
// place and are filtered on every read.
type Collection[T pagination.Item] struct {
	mu    sync.RWMutex
	items []T
	byID  map[string]int
}

func NewCollection[T pagination.Item]() *Collection[T] {
	return &Collection[T]{
		byID: make(map[string]int),
	}
}

func (c *Collection[T]) Insert(_ context.Context, items ...T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, it := range items {
		id := it.ItemID()
		if id == "" {
			return storage.ErrEmptyID
		}
		if _, ok := c.byID[id]; ok {
			return storage.ErrDuplicateID
		}
		c.byID[id] = len(c.items)
		c.items = append(c.items, it)
	}
	return nil
}

// Update replaces the record with fn's result. The id must not change.
func (c *Collection[T]) Update(_ context.Context, id string, fn func(T) T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.byID[id]
	if !ok || c.items[i].Deleted() {
		return service.ErrNotFound
	}
	c.items[i] = fn(c.items[i])
	return nil
}

func (c *Collection[T]) FindByID(_ context.Context, id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T
	i, ok := c.byID[id]
	if !ok || c.items[i].Deleted() {
		return zero, service.ErrNotFound
	}
	return c.items[i], nil
}

func (c *Collection[T]) FindMany(ctx context.Context, q pagination.Query) ([]T, error) {
	c.mu.RLock()
	out := make([]T, 0)
	for _, it := range c.items {
		if pagination.Match(it, q) {
			out = append(out, it)
		}
	}
	c.mu.RUnlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pagination.Sort(out, q.Sort)
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
