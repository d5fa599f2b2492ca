// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book_test

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/core/book"
	"github.com/taibuivan/folio/internal/core/reference"
	"github.com/taibuivan/folio/internal/core/scoring"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/currency"
	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/pkg/slice"
)

// memoryRepository is an in-memory [book.Repository].
type memoryRepository struct {
	mu        sync.Mutex
	nextID    int
	rows      map[int]book.Book
	saved     map[int]book.Scores
	ownedRead int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{rows: map[int]book.Book{}, saved: map[int]book.Scores{}}
}

func (m *memoryRepository) List(_ context.Context, filter book.Filter, limit, offset int) ([]*book.Book, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matches []*book.Book
	for _, row := range m.rows {
		if filter.Query != "" && !strings.Contains(strings.ToLower(row.Title), strings.ToLower(filter.Query)) {
			continue
		}
		if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, row.Status) {
			continue
		}
		if len(filter.AuthorIDs) > 0 && (row.AuthorID == nil || !slices.Contains(filter.AuthorIDs, *row.AuthorID)) {
			continue
		}
		copied := row
		matches = append(matches, &copied)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID > matches[j].ID })

	total := len(matches)
	offset = min(offset, total)
	return matches[offset:min(offset+limit, total)], total, nil
}

func (m *memoryRepository) Get(_ context.Context, id int) (*book.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.rows[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &row, nil
}

func (m *memoryRepository) Create(_ context.Context, b *book.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	b.ID = m.nextID
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	m.rows[b.ID] = *b
	return nil
}

func (m *memoryRepository) UpdateStatus(_ context.Context, id int, status book.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.rows[id]
	if !ok {
		return dberr.ErrNotFound
	}
	row.Status = status
	m.rows[id] = row
	return nil
}

func (m *memoryRepository) ListOwned(_ context.Context) (scoring.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ownedRead++
	var rows []book.Book
	for _, row := range m.rows {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	owned := slice.Filter(rows, func(b book.Book) bool { return b.Status.IsOwned() })
	return slice.Map(owned, func(b book.Book) scoring.OwnedBook {
		return scoring.OwnedBook{ID: b.ID, Title: b.Title, AuthorID: b.AuthorID}
	}), nil
}

func (m *memoryRepository) SaveScores(_ context.Context, id int, scores book.Scores) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.rows[id]
	if !ok {
		return dberr.ErrNotFound
	}
	row.InvestmentGrade = &scores.InvestmentGrade
	row.StrategicFit = &scores.StrategicFit
	row.CollectionImpact = &scores.CollectionImpact
	row.ScoredAt = &scores.ScoredAt
	m.rows[id] = row
	m.saved[id] = scores
	return nil
}

// insert stores a row directly, bypassing validation.
func (m *memoryRepository) insert(t *testing.T, b book.Book) int {
	t.Helper()
	require.NoError(t, m.Create(context.Background(), &b))
	return b.ID
}

// staticReferences resolves references from a fixed table.
type staticReferences map[reference.Kind]map[int]scoring.Reference

func (s staticReferences) Resolve(_ context.Context, kind reference.Kind, id *int) (*scoring.Reference, error) {
	if id == nil {
		return nil, nil
	}
	ref, ok := s[kind][*id]
	if !ok {
		return nil, apperr.Unprocessable(kind.Label() + " referenced by the book does not exist")
	}
	return &ref, nil
}

// staticConfig always yields the same configuration.
type staticConfig struct {
	cfg scoring.Config
	err error
}

func (s staticConfig) ScoringConfig(context.Context) (scoring.Config, error) {
	return s.cfg, s.err
}

// fixture bundles a service with its fakes.
type fixture struct {
	service *book.Service
	repo    *memoryRepository
}

const (
	authorHardy    = 1
	authorEliot    = 2
	publisherMacm  = 10
	publisherSmall = 11
)

func newFixture(t *testing.T) fixture {
	t.Helper()

	tier1, tier2 := scoring.Tier1, scoring.Tier2
	references := staticReferences{
		reference.KindAuthor: {
			authorHardy: {ID: authorHardy, Name: "Thomas Hardy", Tier: &tier2, Preferred: true},
			authorEliot: {ID: authorEliot, Name: "George Eliot"},
		},
		reference.KindPublisher: {
			publisherMacm:  {ID: publisherMacm, Name: "Macmillan", Tier: &tier1},
			publisherSmall: {ID: publisherSmall, Name: "Small Press"},
		},
	}

	converter, err := currency.NewConverter("USD", map[string]float64{"GBP": 1.27})
	require.NoError(t, err)

	repo := newMemoryRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := book.NewService(repo, references, staticConfig{cfg: scoring.DefaultConfig()}, converter, logger)

	return fixture{service: service, repo: repo}
}
