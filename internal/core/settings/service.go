// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/taibuivan/folio/internal/core/scoring"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/dberr"
)

// Service resolves and updates the effective scoring configuration.
type Service struct {
	repo   Repository
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

// NewService constructs a settings [Service]. A nil cache disables caching.
func NewService(repo Repository, cache Cache, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

/*
ScoringSettings returns the effective scoring configuration with provenance.

Parameters:
  - context: context.Context

Returns:
  - *ScoringSettings: Validated configuration
  - error: Storage errors, or Internal when the stored document no longer validates
*/
func (service *Service) ScoringSettings(context context.Context) (*ScoringSettings, error) {

	// 1. Cache
	if cached := service.readCache(context); cached != nil {
		return cached, nil
	}

	// 2. Database overlay, falling back to defaults
	settings, err := service.load(context)
	if err != nil {
		return nil, err
	}

	// 3. Populate the cache for subsequent requests
	service.writeCache(context, settings)
	return settings, nil
}

// ScoringConfig is [Service.ScoringSettings] without provenance. It satisfies
// the book service's configuration source.
func (service *Service) ScoringConfig(context context.Context) (scoring.Config, error) {
	settings, err := service.ScoringSettings(context)
	if err != nil {
		return scoring.Config{}, err
	}
	return settings.Config, nil
}

/*
UpdateScoringConfig replaces the stored scoring document.

The document is validated as an overlay before anything is written. On success
the cached copy is evicted so the next read observes the change.

Parameters:
  - context: context.Context
  - document: Partial JSON overlay (may be "{}" to restore defaults)
  - updatedBy: Acting user ID, kept on the row

Returns:
  - *ScoringSettings: The new effective configuration
  - error: ValidationError (400) or storage errors
*/
func (service *Service) UpdateScoringConfig(context context.Context, document json.RawMessage, updatedBy string) (*ScoringSettings, error) {
	cfg, err := Overlay(document)
	if err != nil {
		return nil, apperr.ValidationError("Invalid scoring configuration", apperr.FieldError{
			Field:   "config",
			Message: err.Error(),
		})
	}

	record, err := service.repo.Put(context, KeyScoring, document, updatedBy)
	if err != nil {
		return nil, err
	}

	if service.cache != nil {
		if err := service.cache.Delete(context, KeyScoring); err != nil {
			service.logger.WarnContext(context, "scoring_settings_cache_evict_failed", slog.Any("error", err))
		}
	}

	service.logger.InfoContext(context, "scoring_settings_updated",
		slog.String("updated_by", updatedBy),
		slog.Int("discount_bands", len(cfg.DiscountBands)),
		slog.Int("eras", len(cfg.Eras)),
	)

	return &ScoringSettings{
		Config:    cfg,
		Source:    SourceStored,
		UpdatedAt: &record.UpdatedAt,
		UpdatedBy: record.UpdatedBy,
	}, nil
}

// load reads the stored overlay. A missing row means defaults.
func (service *Service) load(context context.Context) (*ScoringSettings, error) {
	record, err := service.repo.Get(context, KeyScoring)
	if errors.Is(err, dberr.ErrNotFound) {
		return &ScoringSettings{Config: scoring.DefaultConfig(), Source: SourceDefault}, nil
	}
	if err != nil {
		return nil, err
	}

	cfg, err := Overlay(record.Value)
	if err != nil {
		// Writes are validated, so this means the row was edited by hand.
		return nil, apperr.Internal(err)
	}

	return &ScoringSettings{
		Config:    cfg,
		Source:    SourceStored,
		UpdatedAt: &record.UpdatedAt,
		UpdatedBy: record.UpdatedBy,
	}, nil
}

func (service *Service) readCache(context context.Context) *ScoringSettings {
	if service.cache == nil {
		return nil
	}

	raw, found, err := service.cache.Get(context, KeyScoring)
	if err != nil {
		service.logger.WarnContext(context, "scoring_settings_cache_read_failed", slog.Any("error", err))
		return nil
	}
	if !found {
		return nil
	}

	settings := &ScoringSettings{}
	if err := json.Unmarshal(raw, settings); err != nil || settings.Config.Validate() != nil {
		service.logger.WarnContext(context, "scoring_settings_cache_corrupt")
		return nil
	}
	return settings
}

func (service *Service) writeCache(context context.Context, settings *ScoringSettings) {
	if service.cache == nil {
		return
	}

	raw, err := json.Marshal(settings)
	if err != nil {
		return
	}
	if err := service.cache.Set(context, KeyScoring, raw, service.ttl); err != nil {
		service.logger.WarnContext(context, "scoring_settings_cache_write_failed", slog.Any("error", err))
	}
}
