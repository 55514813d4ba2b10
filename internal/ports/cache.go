package ports

import (
	"context"
	"time"
)

// Cache abstracts the key-value cache in front of the reporting queries.
// Any error from Get is treated as a miss by callers.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping() error
	Close() error
}
