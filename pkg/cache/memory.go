package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type memoryCache struct {
	lru *expirable.LRU[string, []byte]
}

// NewMemory returns an in-process LRU cache with per-entry TTL.
func NewMemory(size int, ttl time.Duration) Cache {
	if size <= 0 {
		size = 256
	}
	return &memoryCache{
		lru: expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.lru.Get(key)
	return v, ok, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte) error {
	m.lru.Add(key, value)
	return nil
}

func (m *memoryCache) Close() error {
	m.lru.Purge()
	return nil
}
