// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/taibuivan/folio/internal/core/scoring"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/pointer"
)

// # Service Layer

// Service orchestrates business rules for reference data.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new reference [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

/*
List provides a paginated search over one reference kind.

Parameters:
  - context: context.Context
  - kind: Kind
  - filter: Filter
  - limit, offset: int

Returns:
  - []*Entity: Matches
  - int: Total record count for pagination
  - error: Retrieval errors
*/
func (service *Service) List(context context.Context, kind Kind, filter Filter, limit, offset int) ([]*Entity, int, error) {
	for _, tier := range filter.Tiers {
		if !tier.IsValid() {
			return nil, 0, validate.RequiredError(FieldTier, "Unknown tier "+string(tier))
		}
	}
	return service.repo.List(context, kind, filter, limit, offset)
}

// Get retrieves one entity, reporting a kind-specific 404.
func (service *Service) Get(context context.Context, kind Kind, id int) (*Entity, error) {
	entity, err := service.repo.Get(context, kind, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.NotFound(kind.Label())
	}
	return entity, err
}

/*
Resolve loads an optional reference for scoring.

A nil id yields a nil reference. A dangling id is reported as Unprocessable:
the book points at a row that no longer exists.

Returns:
  - *scoring.Reference: Engine view of the entity, or nil
  - error: Unprocessable or storage errors
*/
func (service *Service) Resolve(context context.Context, kind Kind, id *int) (*scoring.Reference, error) {
	if id == nil {
		return nil, nil
	}

	entity, err := service.repo.Get(context, kind, *id)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.Unprocessable(kind.Label()+" referenced by the book does not exist", apperr.FieldError{
			Field:   string(kind) + "_id",
			Message: "Unknown " + string(kind),
		})
	}
	if err != nil {
		return nil, err
	}

	return entity.ToScoring(), nil
}

/*
Create validates and persists a new reference entity.

Returns:
  - *Entity: The stored entity with ID and timestamps
  - error: Validation (400), duplicate name (409) or storage errors
*/
func (service *Service) Create(context context.Context, kind Kind, input CreateInput) (*Entity, error) {
	entity := &Entity{
		Kind:      kind,
		Name:      strings.TrimSpace(input.Name),
		Preferred: input.Preferred,
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, entity.Name).MaxLen(FieldName, entity.Name, maxNameLength)
	entity.Tier = parseTier(validator, input.Tier)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, entity); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "reference_created",
		slog.String("kind", string(kind)),
		slog.Int("id", entity.ID),
		slog.String("name", entity.Name),
	)
	return entity, nil
}

/*
Update applies a partial change to an existing entity.

Re-tiering changes future scores only; stored book scores stay until the next
refresh.

Returns:
  - *Entity: The updated entity
  - error: NotFound, validation or storage errors
*/
func (service *Service) Update(context context.Context, kind Kind, id int, input UpdateInput) (*Entity, error) {
	entity, err := service.Get(context, kind, id)
	if err != nil {
		return nil, err
	}
	previousTier := entity.Tier

	validator := &validate.Validator{}
	if input.Name != nil {
		entity.Name = strings.TrimSpace(*input.Name)
		validator.Required(FieldName, entity.Name).MaxLen(FieldName, entity.Name, maxNameLength)
	}
	if input.Tier != nil {
		entity.Tier = parseTier(validator, input.Tier)
	}
	if input.Preferred != nil {
		entity.Preferred = *input.Preferred
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, entity); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "reference_updated",
		slog.String("kind", string(kind)),
		slog.Int("id", entity.ID),
		slog.String("tier_before", tierString(previousTier)),
		slog.String("tier_after", tierString(entity.Tier)),
		slog.Bool("preferred", entity.Preferred),
	)
	return entity, nil
}

// parseTier validates a raw tier. Nil or empty means unclassified.
func parseTier(validator *validate.Validator, raw *string) *scoring.Tier {
	if raw == nil || *raw == "" {
		return nil
	}

	tier := scoring.Tier(strings.ToUpper(strings.TrimSpace(*raw)))
	validator.OneOf(FieldTier, string(tier), string(scoring.Tier1), string(scoring.Tier2), string(scoring.Tier3))
	return &tier
}

func tierString(tier *scoring.Tier) string {
	return string(pointer.Val(tier))
}
