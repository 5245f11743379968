package cache

import (
	"context"
	"sync"
	"time"
)

// Store is the snapshot cache in front of the catalog: serialized published
// item arrays keyed by (type, lang). A miss is never an error; callers fall
// through to the database.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

type memoryItem struct {
	value     []byte
	expiresAt int64 // unix nanos; 0 means no expiration
}

// Memory is a thread-safe in-process Store. It is the default when no Redis
// address is configured, and what the package tests run against.
type Memory struct {
	m sync.Map
}

func NewMemory() *Memory {
	return &Memory{}
}

func (c *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return nil, false
	}
	item := v.(memoryItem)
	if item.expiresAt > 0 && time.Now().UnixNano() > item.expiresAt {
		c.m.Delete(key)
		return nil, false
	}
	return item.value, true
}

func (c *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl).UnixNano()
	}
	c.m.Store(key, memoryItem{value: value, expiresAt: expiresAt})
}

func (c *Memory) Delete(_ context.Context, key string) {
	c.m.Delete(key)
}
