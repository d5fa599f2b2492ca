// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package settings serves the admin-editable scoring configuration.

The stored document is a partial JSON overlay on [scoring.DefaultConfig]: map
entries merge key by key, lists replace wholesale. The effective configuration
is validated before it is cached or handed to the engine, so a bad document can
never reach a score.

# Read Path

 1. Redis (key "settings:scoring", TTL from SETTINGS_CACHE_TTL).
 2. Postgres row system.setting['scoring'], overlaid on the defaults.
 3. Defaults alone when no row exists.

A Redis failure is logged and falls through to Postgres.
*/
package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/taibuivan/folio/internal/core/scoring"
)

// KeyScoring is the system.setting key of the scoring document.
const KeyScoring = "scoring"

// Source tells callers where the effective configuration came from.
type Source string

const (
	SourceDefault Source = "default"
	SourceStored  Source = "stored"
)

// Record is one raw row of system.setting.
type Record struct {
	Key       string
	Value     json.RawMessage
	UpdatedAt time.Time
	UpdatedBy *string
}

// ScoringSettings is the effective configuration plus its provenance.
type ScoringSettings struct {
	Config    scoring.Config `json:"config"`
	Source    Source         `json:"source"`
	UpdatedAt *time.Time     `json:"updated_at,omitempty"`
	UpdatedBy *string        `json:"updated_by,omitempty"`
}

// listKeys clears each default list a document replaces. json decodes into
// existing slice elements, so omitted fields would otherwise keep default values.
var listKeys = map[string]func(*scoring.Config){
	"discount_bands": func(cfg *scoring.Config) { cfg.DiscountBands = nil },
	"eras":           func(cfg *scoring.Config) { cfg.Eras = nil },
	"dispositions":   func(cfg *scoring.Config) { cfg.Dispositions = nil },
}

// Overlay applies a stored JSON document on top of the default tables and
// validates the result. Unknown keys are rejected.
func Overlay(document []byte) (scoring.Config, error) {
	cfg := scoring.DefaultConfig()

	if len(bytes.TrimSpace(document)) > 0 {
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(document, &keys); err != nil {
			return scoring.Config{}, fmt.Errorf("settings: malformed scoring document: %w", err)
		}
		for key := range keys {
			if reset, ok := listKeys[key]; ok {
				reset(&cfg)
			}
		}

		decoder := json.NewDecoder(bytes.NewReader(document))
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(&cfg); err != nil {
			return scoring.Config{}, fmt.Errorf("settings: malformed scoring document: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return scoring.Config{}, err
	}
	return cfg, nil
}
