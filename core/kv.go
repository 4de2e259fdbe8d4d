package core

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KVStore.Load for absent keys.
var ErrKeyNotFound = errors.New("key not found")

// KVStore persists named byte-string entries. It is the only storage contract
// the domain repositories rely on; backends live in storage/kvstore.
type KVStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
