// Package kvstore implements the device-local persistent key-value substrate
// shared by the entity store, the template subsystem, and the sync
// coordinator. Each consumer uses its own key namespace, so no key is ever
// written by two components.
package kvstore

import "context"

// Store is a namespaced byte-value store. Get returns (nil, nil) when the key
// is absent; absence is a valid outcome, not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)

	// SetMany writes all pairs atomically: either every key is updated or
	// none is. Whole-dataset import relies on this.
	SetMany(ctx context.Context, values map[string][]byte) error
}
