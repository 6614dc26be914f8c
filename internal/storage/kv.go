// Package storage provides the durable key/value substrate the entity
// stores persist through. Implementations hold opaque string blobs under
// fixed keys; callers own serialization.
package storage

import "context"

// KV is the persistence contract consumed by the entity stores. Get reports
// ok=false when the key has never been written (or was removed), which is
// not an error.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
