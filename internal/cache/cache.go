// Package cache holds the optional Redis backed read cache for governance
// connector listings.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"identityapi/internal/config"
)

// ErrMiss is returned by Store.Get when the key is absent.
var ErrMiss = errors.New("cache miss")

// Store is the key/value surface the cache needs.
type Store interface {
	Get(ctx context.Context, namespace, key string) (string, error)
	Set(ctx context.Context, namespace, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, namespace, key string) error
}

// Redis is a Store backed by a single node or cluster client.
type Redis struct {
	client redis.UniversalClient
}

// NewRedis builds a Redis store. It returns nil when no address is configured.
func NewRedis(cfg config.RedisConfig) *Redis {
	if len(cfg.Addrs) == 0 {
		return nil
	}
	var rdb redis.UniversalClient
	if cfg.UseCluster && len(cfg.Addrs) > 1 {
		rdb = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:    cfg.Addrs,
			Password: cfg.Password,
		})
	} else {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Addrs[0],
			Password: cfg.Password,
		})
	}
	return &Redis{client: rdb}
}

// Get returns ErrMiss when namespace:key is absent.
func (r *Redis) Get(ctx context.Context, namespace, key string) (string, error) {
	v, err := r.client.Get(ctx, namespace+":"+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	return v, err
}

// Set stores value under namespace:key for ttl.
func (r *Redis) Set(ctx context.Context, namespace, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, namespace+":"+key, value, ttl).Err()
}

// Delete removes namespace:key. A missing key is not an error.
func (r *Redis) Delete(ctx context.Context, namespace, key string) error {
	return r.client.Del(ctx, namespace+":"+key).Err()
}

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the client's connections.
func (r *Redis) Close() error {
	return r.client.Close()
}
