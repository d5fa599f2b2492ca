// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/core/reference"
	"github.com/taibuivan/folio/internal/core/scoring"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/pkg/pointer"
)

func newService(t *testing.T) (*reference.Service, *memoryRepository) {
	t.Helper()
	repo := newMemoryRepository()
	return reference.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

/*
TestService_Create verifies normalisation and validation of new entities.
*/
func TestService_Create(t *testing.T) {
	tests := []struct {
		name     string
		input    reference.CreateInput
		wantTier *scoring.Tier
		wantCode string
	}{
		{"tiered", reference.CreateInput{Name: "  Macmillan ", Tier: pointer.To("tier_1")}, pointer.To(scoring.Tier1), ""},
		{"untiered", reference.CreateInput{Name: "Chatto"}, nil, ""},
		{"empty_tier_is_none", reference.CreateInput{Name: "Smith, Elder", Tier: pointer.To("")}, nil, ""},
		{"missing_name", reference.CreateInput{Name: "  "}, nil, "VALIDATION_ERROR"},
		{"unknown_tier", reference.CreateInput{Name: "Bentley", Tier: pointer.To("TIER_9")}, nil, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newService(t)

			entity, err := service.Create(context.Background(), reference.KindPublisher, tt.input)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, apperr.As(err).Code)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, entity.ID)
			assert.Equal(t, reference.KindPublisher, entity.Kind)
			assert.Equal(t, tt.wantTier, entity.Tier)
			assert.Equal(t, strings.TrimSpace(tt.input.Name), entity.Name)
		})
	}
}

/*
TestService_Update verifies partial updates and tier clearing.
*/
func TestService_Update(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, reference.KindAuthor, reference.CreateInput{Name: "George Eliot", Tier: pointer.To("TIER_2")})
	require.NoError(t, err)

	updated, err := service.Update(ctx, reference.KindAuthor, created.ID, reference.UpdateInput{Preferred: pointer.To(true)})
	require.NoError(t, err)
	assert.Equal(t, "George Eliot", updated.Name)
	assert.Equal(t, pointer.To(scoring.Tier2), updated.Tier)
	assert.True(t, updated.Preferred)

	cleared, err := service.Update(ctx, reference.KindAuthor, created.ID, reference.UpdateInput{Tier: pointer.To("")})
	require.NoError(t, err)
	assert.Nil(t, cleared.Tier)

	_, err = service.Update(ctx, reference.KindAuthor, 999, reference.UpdateInput{})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	assert.Equal(t, "Author not found", apperr.As(err).Message)
}

/*
TestService_Resolve verifies the projection used by book scoring.
*/
func TestService_Resolve(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, reference.KindPublisher, reference.CreateInput{Name: "Macmillan", Tier: pointer.To("TIER_1"), Preferred: true})
	require.NoError(t, err)

	ref, err := service.Resolve(ctx, reference.KindPublisher, &created.ID)
	require.NoError(t, err)
	assert.Equal(t, &scoring.Reference{ID: created.ID, Name: "Macmillan", Tier: pointer.To(scoring.Tier1), Preferred: true}, ref)

	none, err := service.Resolve(ctx, reference.KindPublisher, nil)
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = service.Resolve(ctx, reference.KindPublisher, pointer.To(404))
	require.Error(t, err)
	assert.Equal(t, "UNPROCESSABLE", apperr.As(err).Code)
}

/*
TestService_List verifies tier filtering and rejection of unknown tiers.
*/
func TestService_List(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	for _, input := range []reference.CreateInput{
		{Name: "Zaehnsdorf", Tier: pointer.To("TIER_1")},
		{Name: "Rivière", Tier: pointer.To("TIER_1"), Preferred: true},
		{Name: "Local bindery"},
	} {
		_, err := service.Create(ctx, reference.KindBinder, input)
		require.NoError(t, err)
	}

	entities, total, err := service.List(ctx, reference.KindBinder, reference.Filter{Tiers: []scoring.Tier{scoring.Tier1}}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, entities, 2)

	_, total, err = service.List(ctx, reference.KindBinder, reference.Filter{PreferredOnly: true}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	_, _, err = service.List(ctx, reference.KindBinder, reference.Filter{Tiers: []scoring.Tier{"GOLD"}}, 10, 0)
	assert.Error(t, err)
}
