package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces fingerprints so the tracker can share a Redis
// database with other consumers.
const keyPrefix = "invoice:fp:"

// RedisTracker remembers content fingerprints of accepted invoices in
// Redis. Entries expire after the retention window so the keyspace stays
// bounded.
type RedisTracker struct {
	client    *redis.Client
	retention time.Duration
}

func NewRedisTracker(client *redis.Client, retention time.Duration) *RedisTracker {
	if retention <= 0 {
		retention = 30 * 24 * time.Hour
	}
	return &RedisTracker{client: client, retention: retention}
}

// Seen marks the fingerprint and reports whether it was already present.
// SetNX gives both in one round trip: a false reply means the key existed.
func (t *RedisTracker) Seen(ctx context.Context, fingerprint string) (bool, error) {
	created, err := t.client.SetNX(ctx, keyPrefix+fingerprint, 1, t.retention).Result()
	if err != nil {
		return false, fmt.Errorf("tracking fingerprint: %w", err)
	}
	return !created, nil
}
