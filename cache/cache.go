package cache

import (
	"context"
	"crypto/md5"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is a TTL cache keyed by request fingerprint. There is deliberately
// no package-level instance: callers construct one and pass it around.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Put(ctx context.Context, key, value string, ttl time.Duration)
}

// Clock supplies the current time; tests inject a fake.
type Clock func() time.Time

// Fingerprint normalizes request parts into a stable cache key.
func Fingerprint(parts ...string) string {
	joined := strings.ToLower(strings.Join(parts, "|"))
	return fmt.Sprintf("%x", md5.Sum([]byte(joined)))
}

type memoryEntry struct {
	value   string
	expires time.Time
}

// Memory is an in-process Store.
type Memory struct {
	mu      sync.Mutex
	now     Clock
	entries map[string]memoryEntry
}

func NewMemory(now Clock) *Memory {
	if now == nil {
		now = time.Now
	}
	return &Memory{now: now, entries: make(map[string]memoryEntry)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return "", false
	}
	if m.now().After(e.expires) {
		delete(m.entries, key)
		return "", false
	}
	return e.value, true
}

func (m *Memory) Put(_ context.Context, key, value string, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{value: value, expires: m.now().Add(ttl)}
}

// Redis is a Store over a shared redis connection, for multi-instance
// deployments.
type Redis struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *Redis) Put(ctx context.Context, key, value string, ttl time.Duration) {
	r.rdb.Set(ctx, key, value, ttl)
}
