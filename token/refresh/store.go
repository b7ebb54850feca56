package refresh

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned by a Store when the key is absent or its TTL has lapsed.
var ErrKeyNotFound = errors.New("refresh key not found")

// Store is the TTL-capable key-value store holding refresh-token snapshots.
// Delete must not fail when the key is already gone.
type Store interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
