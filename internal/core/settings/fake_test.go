// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/taibuivan/folio/internal/core/settings"
	"github.com/taibuivan/folio/internal/platform/dberr"
)

// memoryRepository is an in-memory [settings.Repository].
type memoryRepository struct {
	mu   sync.Mutex
	rows map[string]settings.Record
	gets int
	puts int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{rows: map[string]settings.Record{}}
}

func (m *memoryRepository) Get(_ context.Context, key string) (*settings.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.gets++
	record, ok := m.rows[key]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &record, nil
}

func (m *memoryRepository) Put(_ context.Context, key string, value []byte, updatedBy string) (*settings.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.puts++
	record := settings.Record{Key: key, Value: append([]byte(nil), value...), UpdatedAt: time.Now(), UpdatedBy: &updatedBy}
	m.rows[key] = record
	return &record, nil
}

// memoryCache is an in-memory [settings.Cache] that can be made to fail.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	ttls    map[string]time.Duration
	broken  bool
}

var errCacheDown = errors.New("cache unavailable")

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.broken {
		return nil, false, errCacheDown
	}
	value, ok := c.entries[key]
	return value, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.broken {
		return errCacheDown
	}
	c.entries[key] = value
	c.ttls[key] = ttl
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.broken {
		return errCacheDown
	}
	delete(c.entries, key)
	return nil
}
