package dedup_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/invopipe/invoice-ingest/internal/modules/invoice/infrastructure/dedup"
)

func TestRedisTracker_UnreachableServerIsFault(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond})
	defer client.Close()
	tracker := dedup.NewRedisTracker(client, time.Hour)

	seen, err := tracker.Seen(context.Background(), "deadbeefdeadbeef")

	assert.Error(t, err)
	assert.False(t, seen)
}
