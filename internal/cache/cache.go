package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"eaglegym/internal/logger"

	"github.com/redis/go-redis/v9"
)

// Connect returns a client for addr, or nil when Redis is unreachable so
// callers can run without caching.
func Connect(addr string) *redis.Client {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unavailable, caching disabled", "addr", addr, "error", err)
		_ = client.Close()
		return nil
	}

	return client
}

// ErrDisabled is reported by PingContext when no Redis client is configured.
var ErrDisabled = errors.New("cache disabled")

// Store keeps JSON values under a key prefix. A nil client disables it.
type Store struct {
	redis  *redis.Client
	prefix string
}

func New(rdb *redis.Client, prefix string) *Store {
	return &Store{redis: rdb, prefix: prefix}
}

func (s *Store) Enabled() bool {
	return s != nil && s.redis != nil
}

func (s *Store) PingContext(ctx context.Context) error {
	if !s.Enabled() {
		return ErrDisabled
	}
	return s.redis.Ping(ctx).Err()
}

func (s *Store) key(k string) string {
	return s.prefix + ":" + k
}

// GetJSON decodes the value under key into dst and reports whether it was present.
func (s *Store) GetJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	if !s.Enabled() {
		return false, nil
	}

	data, err := s.redis.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(data), dst); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	if !s.Enabled() {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return s.redis.Set(ctx, s.key(key), string(data), ttl).Err()
}

func (s *Store) Close() error {
	if !s.Enabled() {
		return nil
	}
	return s.redis.Close()
}
