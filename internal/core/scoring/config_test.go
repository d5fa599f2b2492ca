// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/folio/internal/core/scoring"
)

/*
TestConfig_Validate checks each structural rule on the scoring tables.
*/
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*scoring.Config)
		ok     bool
	}{
		{"defaults", func(*scoring.Config) {}, true},
		{"tier_inversion", func(c *scoring.Config) { c.TierPoints[scoring.Tier3] = 99 }, false},
		{"unknown_tier", func(c *scoring.Config) { c.TierPoints["TIER_4"] = 1 }, false},
		{"negative_bonus", func(c *scoring.Config) { c.PreferredBonus = -1 }, false},
		{"positive_penalty", func(c *scoring.Config) { c.DuplicatePenalty = 0 }, false},
		{"bands_not_from_zero", func(c *scoring.Config) { c.DiscountBands[0].Min = 5 }, false},
		{"bands_unsorted", func(c *scoring.Config) { c.DiscountBands[2].Min = 10 }, false},
		{"bands_decreasing_points", func(c *scoring.Config) { c.DiscountBands[5].Points = 1 }, false},
		{"era_reversed", func(c *scoring.Config) { c.Eras[0].To = 1700 }, false},
		{"era_overlap", func(c *scoring.Config) { c.Eras[1].From = 1830 }, false},
		{"unknown_condition", func(c *scoring.Config) { c.ConditionPoints["Mint"] = 1 }, false},
		{"dispositions_unsorted", func(c *scoring.Config) { c.Dispositions[1].Min = 90 }, false},
		{"no_fallback", func(c *scoring.Config) { c.FallbackDisposition = "" }, false},
		{"band_without_label", func(c *scoring.Config) { c.DiscountBands[3].Label = "" }, false},
		{"era_without_name", func(c *scoring.Config) { c.Eras[2].Name = "" }, false},
		{"disposition_without_label", func(c *scoring.Config) { c.Dispositions[0].Label = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := scoring.DefaultConfig()
			tt.mutate(&cfg)

			if tt.ok {
				assert.NoError(t, cfg.Validate())
			} else {
				assert.Error(t, cfg.Validate())
			}
		})
	}
}

/*
TestConfig_Disposition checks display bands, including negative scores.
*/
func TestConfig_Disposition(t *testing.T) {
	cfg := scoring.DefaultConfig()

	assert.Equal(t, "STRONG", cfg.Disposition(80))
	assert.Equal(t, "STRONG", cfg.Disposition(187))
	assert.Equal(t, "CONDITIONAL", cfg.Disposition(65))
	assert.Equal(t, "CONDITIONAL", cfg.Disposition(50))
	assert.Equal(t, "PASS", cfg.Disposition(49))
	assert.Equal(t, "PASS", cfg.Disposition(-40))
}
