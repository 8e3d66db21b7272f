package db

import (
	"context"
	"path"
	"sort"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// InMemoryRedisClient is a process-local RedisClient used when Redis is disabled and in tests.
type InMemoryRedisClient struct {
	data    map[string]memoryEntry
	mu      sync.RWMutex
	context context.Context
	now     func() time.Time
}

// NewInMemoryRedisClient initializes a new InMemoryRedisClient.
func NewInMemoryRedisClient(ctx context.Context) *InMemoryRedisClient {
	return &InMemoryRedisClient{
		data:    make(map[string]memoryEntry),
		context: ctx,
		now:     time.Now,
	}
}

// Set stores a key-value pair; a zero ttl never expires.
// Expired entries are evicted on every write.
func (m *InMemoryRedisClient) Set(key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evictExpired()
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.data[key] = entry
	return nil
}

// Get retrieves a live value for a given key.
func (m *InMemoryRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	entry, exists := m.data[key]
	m.mu.RUnlock()
	if !exists {
		return "", ErrCacheMiss
	}
	if m.expired(entry) {
		m.mu.Lock()
		// re-check: a concurrent Set may have refreshed the key
		if current, ok := m.data[key]; ok && m.expired(current) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return "", ErrCacheMiss
	}
	return entry.value, nil
}

// Keys returns the live keys matching a glob pattern, sorted.
func (m *InMemoryRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evictExpired()
	keys := []string{}
	for k := range m.data {
		ok, err := path.Match(pattern, k)
		if err != nil {
			return nil, err
		}
		if ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *InMemoryRedisClient) Del(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *InMemoryRedisClient) GetContext() context.Context {
	return m.context
}

func (m *InMemoryRedisClient) Ping() error {
	return nil
}

func (m *InMemoryRedisClient) Close() error {
	return nil
}

func (m *InMemoryRedisClient) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt)
}

// Len returns the number of stored entries, expired or not.
func (m *InMemoryRedisClient) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// evictExpired must be called with mu held for writing.
func (m *InMemoryRedisClient) evictExpired() {
	for k, entry := range m.data {
		if m.expired(entry) {
			delete(m.data, k)
		}
	}
}
