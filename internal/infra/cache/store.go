package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is a byte-oriented cache with per-entry TTL, shared across
// instances when Redis is configured. Callers serialize their own
// payloads so the same store serves any response shape.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// NewStore returns a Redis-backed store when redisURL parses and the
// server answers a ping, otherwise a process-local memory store.
func NewStore(redisURL string) Store {
	if redisURL == "" {
		return NewMemoryStore()
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return NewMemoryStore()
	}
	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return NewMemoryStore()
	}
	return &RedisStore{client: client}
}

// RedisStore backs Store with a Redis server.
type RedisStore struct {
	client *redis.Client
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (r *RedisStore) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, val, ttl).Err()
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// MemoryStore is the in-process fallback, backed by the generic
// in-memory cache.
type MemoryStore struct {
	c *InMemory[[]byte]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{c: New[[]byte](5 * time.Minute)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	return m.c.Get(key)
}

func (m *MemoryStore) Set(_ context.Context, key string, val []byte, ttl time.Duration) error {
	m.c.Set(key, val, ttl)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.c.Delete(key)
	return nil
}
