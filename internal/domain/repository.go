package domain

import (
	"context"
	"time"
)

// ScaleCache defines the interface for caching rendered scale results.
// The engine itself is pure; caching lives entirely at the service
// layer, keyed by line list, multiplier and unit mode.
type ScaleCache interface {
	Get(ctx context.Context, key string) ([]string, error)
	Set(ctx context.Context, key string, value []string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
