package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	PoolSize int
}

// RedisClient counts requests in fixed windows shared by every API instance.
type RedisClient struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

func NewRedisClient(cfg RedisConfig, limit int, window time.Duration) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: 5,

		// Timeouts
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,

		// Retry configuration
		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		limit:  int64(limit),
		window: window,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func (r *RedisClient) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return r.client.Ping(ctx).Err()
}

func (r *RedisClient) rateKey(key string, now time.Time) string {
	bucket := now.UnixNano() / int64(r.window)
	return fmt.Sprintf("ratelimit:%s:%d", key, bucket)
}

// Hit increments the counter of key for the current window and returns the
// count so far.
func (r *RedisClient) Hit(ctx context.Context, key string) (int64, error) {
	rateKey := r.rateKey(key, time.Now())

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, rateKey)
	pipe.Expire(ctx, rateKey, r.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to count request in Redis: %w", err)
	}

	return incr.Val(), nil
}

// Allow reports whether key is still under the limit in the current window.
// Requests are let through when Redis is unreachable.
func (r *RedisClient) Allow(key string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	count, err := r.Hit(ctx, key)
	if err != nil {
		return true
	}

	return count <= r.limit
}
