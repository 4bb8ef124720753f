// Package store implements the entity store: the sole reader/writer of the
// persisted business records, their invariants, and the derived computations
// over them. Collections are persisted whole as JSON values in the key-value
// substrate; every mutation is a read-modify-write of the full collection
// under a per-collection lock.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"talentbase/internal/common"
	"talentbase/internal/kvstore"
)

// record is any entity with a string identity.
type record interface {
	RecordID() string
}

// collection is a generic persisted entity collection. The mutex serializes
// read-modify-write cycles so two rapid mutations cannot lose an update.
type collection[T record] struct {
	key  string
	kv   kvstore.Store
	mu   sync.Mutex
	seed func() []T // optional; runs once when nothing is persisted yet
}

func newCollection[T record](kv kvstore.Store, key string) *collection[T] {
	return &collection[T]{key: key, kv: kv}
}

// load reads and decodes the collection. Callers must hold c.mu when the
// result feeds a write back. A decode failure means the stored JSON is
// damaged and surfaces as ErrCorruptState.
func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}

	if raw == nil {
		if c.seed != nil {
			items := c.seed()
			if err := c.save(ctx, items); err != nil {
				return nil, err
			}
			return items, nil
		}
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrCorruptState, c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// save re-serializes the whole collection and writes it in one operation.
func (c *collection[T]) save(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	return c.kv.Set(ctx, c.key, raw)
}

// List returns all records, an empty slice when none are persisted.
func (c *collection[T]) List(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Get returns the record with the given id, or (nil, nil) when absent.
// Absence is a valid outcome, not an error.
func (c *collection[T]) Get(ctx context.Context, id string) (*T, error) {
	items, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].RecordID() == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// Append persists a new record at the end of the collection.
func (c *collection[T]) Append(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	return c.save(ctx, append(items, item))
}

// Update applies fn to the record with the given id and re-persists the
// collection. Returns ErrNotFound when the id is absent.
func (c *collection[T]) Update(ctx context.Context, id string, fn func(*T)) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].RecordID() == id {
			fn(&items[i])
			if err := c.save(ctx, items); err != nil {
				return nil, err
			}
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", common.ErrNotFound, id)
}

// Delete removes the record if present, reporting whether it was there.
// Missing ids are a no-op, not an error. Deletes never cascade into other
// collections; readers resolve dangling references to the Unknown sentinel.
func (c *collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return false, err
	}
	for i := range items {
		if items[i].RecordID() == id {
			items = append(items[:i], items[i+1:]...)
			if err := c.save(ctx, items); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
