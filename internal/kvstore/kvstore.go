package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Load when no value exists for the key.
var ErrKeyNotFound = errors.New("key not found")

// Store is the persistence collaborator the core depends on: a flat
// key-value blob store. Values are opaque byte slices; callers own the
// serialization format.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
