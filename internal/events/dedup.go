package events

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Deduper answers whether a payment ID has already been relayed. Stripe
// redelivers webhooks, so without a guard the same confirmation can be
// emitted twice.
type Deduper interface {
	Seen(ctx context.Context, paymentID string) (bool, error)
}

type RedisDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDeduper(client *redis.Client, ttl time.Duration) *RedisDeduper {
	return &RedisDeduper{client: client, ttl: ttl}
}

// Seen marks the payment ID and reports whether it was already marked. The
// TTL only needs to outlast Stripe's redelivery window.
func (d *RedisDeduper) Seen(ctx context.Context, paymentID string) (bool, error) {
	key := "payments:seen:" + paymentID
	created, err := d.client.SetNX(ctx, key, 1, d.ttl).Result()
	if err != nil {
		return false, err
	}
	return !created, nil
}
