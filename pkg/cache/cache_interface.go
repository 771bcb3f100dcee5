package cache

import (
	"context"
	"time"
)

// Cache is the key/value layer in front of the store. Values are JSON encoded.
type Cache interface {
	// Get unmarshals the cached value into dest. found is false on a miss, leaving dest
	// untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob such as "page:fresh:*".
	DeletePattern(ctx context.Context, pattern string) error

	Ping(ctx context.Context) error
}
