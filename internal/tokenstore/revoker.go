package tokenstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/go-redis/redis/v8"
)

// Revoker keeps a denylist of logged-out tokens in redis until their
// natural expiry. A nil *Revoker is valid and means revocation is
// disabled (no REDIS_URL configured); all methods degrade to no-ops.
type Revoker struct {
	client *redis.Client
}

func New(redisURL string) (*Revoker, error) {
	if redisURL == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &Revoker{client: client}, nil
}

func (r *Revoker) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if r == nil {
		return nil
	}
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, key(token), "1", ttl).Err()
}

func (r *Revoker) IsRevoked(ctx context.Context, token string) bool {
	if r == nil {
		return false
	}
	n, err := r.client.Exists(ctx, key(token)).Result()
	if err != nil {
		// Redis being down must not lock every caller out.
		return false
	}
	return n > 0
}

func key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "revoked_token:" + hex.EncodeToString(sum[:])
}
