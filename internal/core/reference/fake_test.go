// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference_test

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/taibuivan/folio/internal/core/reference"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/dberr"
)

// memoryRepository is an in-memory [reference.Repository] keyed by kind.
type memoryRepository struct {
	mu     sync.Mutex
	nextID int
	rows   map[reference.Kind]map[int]reference.Entity
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{rows: map[reference.Kind]map[int]reference.Entity{}}
}

func (m *memoryRepository) List(_ context.Context, kind reference.Kind, filter reference.Filter, limit, offset int) ([]*reference.Entity, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matches []*reference.Entity
	for _, row := range m.rows[kind] {
		if filter.Query != "" && !strings.Contains(strings.ToLower(row.Name), strings.ToLower(filter.Query)) {
			continue
		}
		if filter.PreferredOnly && !row.Preferred {
			continue
		}
		if len(filter.Tiers) > 0 && (row.Tier == nil || !slices.Contains(filter.Tiers, *row.Tier)) {
			continue
		}
		entity := row
		matches = append(matches, &entity)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })

	total := len(matches)
	if offset > total {
		offset = total
	}
	end := min(offset+limit, total)
	return matches[offset:end], total, nil
}

func (m *memoryRepository) Get(_ context.Context, kind reference.Kind, id int) (*reference.Entity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.rows[kind][id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &row, nil
}

func (m *memoryRepository) Create(_ context.Context, entity *reference.Entity) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, row := range m.rows[entity.Kind] {
		if row.Name == entity.Name {
			return apperr.Conflict("A record with the same unique value already exists")
		}
	}

	m.nextID++
	entity.ID = m.nextID
	entity.CreatedAt = time.Now()
	entity.UpdatedAt = entity.CreatedAt

	if m.rows[entity.Kind] == nil {
		m.rows[entity.Kind] = map[int]reference.Entity{}
	}
	m.rows[entity.Kind][entity.ID] = *entity
	return nil
}

func (m *memoryRepository) Update(_ context.Context, entity *reference.Entity) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[entity.Kind][entity.ID]; !ok {
		return dberr.ErrNotFound
	}
	entity.UpdatedAt = time.Now()
	m.rows[entity.Kind][entity.ID] = *entity
	return nil
}
