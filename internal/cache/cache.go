// README: Cache abstraction for provider lookups, with Redis and in-process backends.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnknownBackend reports a backend name other than the constants below.
var ErrUnknownBackend = errors.New("unknown cache backend")

// Cache stores JSON-encodable values by key. A miss is (false, nil).
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

const (
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)
