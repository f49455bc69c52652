package repository

import (
	"context"
	"time"
)

// CacheRepository stores serialized score reports keyed by a hash of the
// input. Implementations must be safe for concurrent use.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}

// DefaultTTL bounds how long a cached report is served.
const DefaultTTL = 10 * time.Minute
