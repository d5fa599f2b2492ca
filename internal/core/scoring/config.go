// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package scoring

import (
	"fmt"
	"sort"
)

// # Configuration Schema

// DiscountBand maps a discount range to investment points.
//
// A band covers [Min, next band's Min). The last band is open-ended.
type DiscountBand struct {
	Min    int    `json:"min" yaml:"min"`
	Label  string `json:"label" yaml:"label"`
	Points int    `json:"points" yaml:"points"`
}

// EraBand assigns a fixed bonus to an inclusive range of publication years.
type EraBand struct {
	Name   string `json:"name" yaml:"name"`
	From   int    `json:"from" yaml:"from"`
	To     int    `json:"to" yaml:"to"`
	Points int    `json:"points" yaml:"points"`
}

// DispositionBand labels every overall score at or above Min.
type DispositionBand struct {
	Min   int    `json:"min" yaml:"min"`
	Label string `json:"label" yaml:"label"`
}

// Config holds every table and constant the engine consumes.
//
// A Config is a value: callers build one per request (or share an immutable
// one) and pass it to [Calculate]. The engine never reads global state.
type Config struct {
	TierPoints      map[Tier]int           `json:"tier_points" yaml:"tier_points"`
	PreferredBonus  int                    `json:"preferred_bonus" yaml:"preferred_bonus"`
	DiscountBands   []DiscountBand         `json:"discount_bands" yaml:"discount_bands"`
	Eras            []EraBand              `json:"eras" yaml:"eras"`
	ConditionPoints map[ConditionGrade]int `json:"condition_points" yaml:"condition_points"`

	CompleteSetBonus int `json:"complete_set_bonus" yaml:"complete_set_bonus"`
	FirstWorkBonus   int `json:"first_work_bonus" yaml:"first_work_bonus"`
	AuthorGapBonus   int `json:"author_gap_bonus" yaml:"author_gap_bonus"`
	DuplicatePenalty int `json:"duplicate_penalty" yaml:"duplicate_penalty"`

	// Dispositions are checked from the highest Min down.
	Dispositions        []DispositionBand `json:"dispositions" yaml:"dispositions"`
	FallbackDisposition string            `json:"fallback_disposition" yaml:"fallback_disposition"`
}

// DefaultConfig returns the stock scoring tables.
func DefaultConfig() Config {
	return Config{
		TierPoints: map[Tier]int{
			Tier1: 35,
			Tier2: 20,
			Tier3: 10,
		},
		PreferredBonus: 10,
		DiscountBands: []DiscountBand{
			{Min: 0, Label: "0-9%", Points: 0},
			{Min: 10, Label: "10-19%", Points: 10},
			{Min: 20, Label: "20-29%", Points: 20},
			{Min: 30, Label: "30-39%", Points: 35},
			{Min: 40, Label: "40-49%", Points: 45},
			{Min: 50, Label: "50%+", Points: 50},
		},
		Eras: []EraBand{
			{Name: "Romantic", From: 1800, To: 1836, Points: 20},
			{Name: "Victorian", From: 1837, To: 1901, Points: 20},
			{Name: "Edwardian", From: 1902, To: 1910, Points: 10},
		},
		ConditionPoints: map[ConditionGrade]int{
			ConditionFine:     15,
			ConditionNearFine: 12,
			ConditionVeryGood: 10,
			ConditionGood:     5,
			ConditionFair:     2,
			ConditionPoor:     0,
			ConditionUngraded: 0,
		},
		CompleteSetBonus: 15,
		FirstWorkBonus:   30,
		AuthorGapBonus:   15,
		DuplicatePenalty: -40,
		Dispositions: []DispositionBand{
			{Min: 80, Label: "STRONG"},
			{Min: 50, Label: "CONDITIONAL"},
		},
		FallbackDisposition: "PASS",
	}
}

// # Validation

// Validate reports the first structural problem in the tables, if any.
func (c Config) Validate() error {
	for tier, points := range c.TierPoints {
		if !tier.IsValid() {
			return fmt.Errorf("scoring: unknown tier %q", tier)
		}
		if points < 0 {
			return fmt.Errorf("scoring: tier %s points must not be negative", tier)
		}
	}

	// Tier 1 outranks Tier 2 outranks Tier 3.
	if c.TierPoints[Tier1] < c.TierPoints[Tier2] || c.TierPoints[Tier2] < c.TierPoints[Tier3] {
		return fmt.Errorf("scoring: tier points must not increase from %s to %s", Tier1, Tier3)
	}

	if c.PreferredBonus < 0 || c.CompleteSetBonus < 0 || c.FirstWorkBonus < 0 || c.AuthorGapBonus < 0 {
		return fmt.Errorf("scoring: bonuses must not be negative")
	}
	if c.DuplicatePenalty >= 0 {
		return fmt.Errorf("scoring: duplicate penalty must be negative, got %d", c.DuplicatePenalty)
	}

	if len(c.DiscountBands) == 0 || c.DiscountBands[0].Min != 0 {
		return fmt.Errorf("scoring: discount bands must start at 0%%")
	}
	for i, band := range c.DiscountBands {
		if band.Label == "" {
			return fmt.Errorf("scoring: discount band from %d%% needs a label", band.Min)
		}
		if i == 0 {
			continue
		}
		prev, cur := c.DiscountBands[i-1], band
		if cur.Min <= prev.Min {
			return fmt.Errorf("scoring: discount band %q must start above %d%%", cur.Label, prev.Min)
		}
		if cur.Points < prev.Points {
			return fmt.Errorf("scoring: discount band %q awards fewer points than %q", cur.Label, prev.Label)
		}
	}

	eras := append([]EraBand(nil), c.Eras...)
	sort.Slice(eras, func(i, j int) bool { return eras[i].From < eras[j].From })
	for i, era := range eras {
		if era.Name == "" {
			return fmt.Errorf("scoring: era from %d needs a name", era.From)
		}
		if era.From > era.To {
			return fmt.Errorf("scoring: era %q ends before it starts", era.Name)
		}
		if era.Points < 0 {
			return fmt.Errorf("scoring: era %q points must not be negative", era.Name)
		}
		if i > 0 && era.From <= eras[i-1].To {
			return fmt.Errorf("scoring: era %q overlaps %q", era.Name, eras[i-1].Name)
		}
	}

	for grade, points := range c.ConditionPoints {
		if !grade.IsValid() {
			return fmt.Errorf("scoring: unknown condition grade %q", grade)
		}
		if points < 0 {
			return fmt.Errorf("scoring: condition %q points must not be negative", grade)
		}
	}

	for i, band := range c.Dispositions {
		if band.Label == "" {
			return fmt.Errorf("scoring: disposition from %d needs a label", band.Min)
		}
		if i > 0 && band.Min >= c.Dispositions[i-1].Min {
			return fmt.Errorf("scoring: disposition %q must be listed below %q", c.Dispositions[i].Label, c.Dispositions[i-1].Label)
		}
	}
	if c.FallbackDisposition == "" {
		return fmt.Errorf("scoring: fallback disposition is required")
	}

	return nil
}

// Disposition classifies an overall score for display. It has no effect on the score.
func (c Config) Disposition(overall int) string {
	for _, band := range c.Dispositions {
		if overall >= band.Min {
			return band.Label
		}
	}
	return c.FallbackDisposition
}
