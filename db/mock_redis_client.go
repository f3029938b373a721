package db

import (
	"context"
	"path"
	"sync"
	"time"
)

// MockRedisClient simulates a Redis client for testing purposes. TTLs are
// honored against the wall clock; expired keys read as misses.
type MockRedisClient struct {
	data    map[string]string
	expiry  map[string]time.Time
	counter map[string]int64
	mu      sync.RWMutex
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		expiry:  make(map[string]time.Time),
		counter: make(map[string]int64),
	}
}

func (m *MockRedisClient) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.expired(key) {
		return "", ErrCacheMiss
	}
	value, exists := m.data[key]
	if !exists {
		return "", ErrCacheMiss
	}
	return value, nil
}

func (m *MockRedisClient) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	if ttl > 0 {
		m.expiry[key] = time.Now().Add(ttl)
	} else {
		delete(m.expiry, key)
	}
	return nil
}

func (m *MockRedisClient) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	delete(m.expiry, key)
	delete(m.counter, key)
	return nil
}

func (m *MockRedisClient) Keys(_ context.Context, pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []string
	for k := range m.data {
		if ok, _ := path.Match(pattern, k); ok && !m.expired(k) {
			out = append(out, k)
		}
	}
	return out, nil
}

func (m *MockRedisClient) IncrWithExpire(_ context.Context, key string, window time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if exp, ok := m.expiry[key]; ok && time.Now().After(exp) {
		delete(m.counter, key)
		delete(m.expiry, key)
	}
	m.counter[key]++
	if m.counter[key] == 1 && window > 0 {
		m.expiry[key] = time.Now().Add(window)
	}
	return m.counter[key], nil
}

func (m *MockRedisClient) Ping(_ context.Context) error {
	return nil
}

// expired must be called with at least a read lock held.
func (m *MockRedisClient) expired(key string) bool {
	exp, ok := m.expiry[key]
	return ok && time.Now().After(exp)
}
