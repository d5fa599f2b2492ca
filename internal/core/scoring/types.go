// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package scoring

import "github.com/shopspring/decimal"

// # Reference Tiers

// Tier is the reputation classification of an author, publisher or binder.
type Tier string

const (
	Tier1 Tier = "TIER_1"
	Tier2 Tier = "TIER_2"
	Tier3 Tier = "TIER_3"
)

// IsValid reports whether t is a recognised [Tier] value.
func (t Tier) IsValid() bool {
	switch t {
	case Tier1, Tier2, Tier3:
		return true
	}
	return false
}

// Label returns the display name used in factor labels (e.g. "Tier 1").
func (t Tier) Label() string {
	switch t {
	case Tier1:
		return "Tier 1"
	case Tier2:
		return "Tier 2"
	case Tier3:
		return "Tier 3"
	}
	return string(t)
}

// Reference is a read-only snapshot of a tiered reference entity.
type Reference struct {
	ID        int    `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Tier      *Tier  `json:"tier" yaml:"tier"`
	Preferred bool   `json:"preferred" yaml:"preferred"`
}

// # Condition Grades

// ConditionGrade is the physical condition of a copy.
type ConditionGrade string

const (
	ConditionFine     ConditionGrade = "Fine"
	ConditionNearFine ConditionGrade = "Near Fine"
	ConditionVeryGood ConditionGrade = "Very Good"
	ConditionGood     ConditionGrade = "Good"
	ConditionFair     ConditionGrade = "Fair"
	ConditionPoor     ConditionGrade = "Poor"
	ConditionUngraded ConditionGrade = "Ungraded"
)

// IsValid reports whether g is a recognised [ConditionGrade].
func (g ConditionGrade) IsValid() bool {
	switch g {
	case ConditionFine, ConditionNearFine, ConditionVeryGood, ConditionGood,
		ConditionFair, ConditionPoor, ConditionUngraded:
		return true
	}
	return false
}

// # Factors

// FactorKind names a single contribution to a dimension's points.
type FactorKind string

const (
	FactorPublisherTier  FactorKind = "publisher_tier"
	FactorEra            FactorKind = "era"
	FactorCondition      FactorKind = "condition"
	FactorCompleteSet    FactorKind = "complete_set"
	FactorAuthorPriority FactorKind = "author_priority"
	FactorAuthorGap      FactorKind = "author_gap"
	FactorDuplicate      FactorKind = "duplicate"
)

// Factor is one labelled line of a breakdown.
type Factor struct {
	Name   FactorKind `json:"name"`
	Label  string     `json:"label"`
	Points int        `json:"points"`
}

// Warning is a machine-readable soft condition surfaced next to a score.
type Warning string

const (
	WarningDuplicate        Warning = "duplicate"
	WarningMissingValuation Warning = "missing_valuation"
	WarningMissingCondition Warning = "missing_condition"
)

// # Inputs

// Candidate is the book being evaluated, with its references already resolved.
//
// PurchasePrice must already be expressed in the base currency.
type Candidate struct {
	// ID is zero for an unsaved candidate.
	ID              int              `json:"id" yaml:"id"`
	Title           string           `json:"title" yaml:"title"`
	PurchasePrice   decimal.Decimal  `json:"purchase_price" yaml:"purchase_price"`
	ValueMid        *decimal.Decimal `json:"value_mid" yaml:"value_mid"`
	PublicationYear *int             `json:"publication_year" yaml:"publication_year"`
	ConditionGrade  *ConditionGrade  `json:"condition_grade" yaml:"condition_grade"`
	CompleteSet     *bool            `json:"complete_set" yaml:"complete_set"`

	Author    *Reference `json:"author" yaml:"author"`
	Publisher *Reference `json:"publisher" yaml:"publisher"`
}

// OwnedBook is one entry of the owned-collection snapshot.
type OwnedBook struct {
	ID       int    `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	AuthorID *int   `json:"author_id" yaml:"author_id"`
}

// Collection is the owned-collection snapshot a candidate is compared against.
// The caller reads it once per calculation; the engine never mutates it.
type Collection []OwnedBook
