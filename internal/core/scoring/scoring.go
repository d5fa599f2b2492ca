// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package scoring is the acquisition scoring engine.

It turns a candidate book and a snapshot of the owned collection into an
explainable score made of three additive dimensions:

  - Investment grade: discount of the purchase price against fair-market value.
  - Strategic fit: publisher tier, era, condition, completeness and author priority.
  - Collection impact: author-gap bonus and duplicate penalty against owned books.

Architecture:

  - Pure: no I/O, no logging, no global state. Every input arrives as a value.
  - Atomic: [Calculate] returns either a complete [Breakdown] or an error.
  - Table-driven: every constant lives in [Config], never in calculator logic.

Callers fetch the book, its references and the owned collection before calling
[Calculate]; the snapshot isolates one calculation from concurrent writes.
*/
package scoring

import "fmt"

// # Result

// Breakdown is the full explanation of a score. It is built per request and
// never persisted; callers store at most the three top-level integers.
type Breakdown struct {
	InvestmentGrade  int     `json:"investment_grade"`
	StrategicFit     int     `json:"strategic_fit"`
	CollectionImpact int     `json:"collection_impact"`
	OverallScore     int     `json:"overall_score"`
	Disposition      string  `json:"disposition"`
	Details          Details `json:"details"`
}

// Details carries the per-dimension explanations.
type Details struct {
	Investment InvestmentDetail `json:"investment"`
	Strategic  StrategicDetail  `json:"strategic"`
	Collection CollectionDetail `json:"collection"`
}

// Warnings returns every soft condition across all three dimensions.
func (b *Breakdown) Warnings() []Warning {
	var all []Warning
	all = append(all, b.Details.Investment.Warnings...)
	all = append(all, b.Details.Strategic.Warnings...)
	all = append(all, b.Details.Collection.Warnings...)
	return all
}

// # Aggregator

// Calculate scores a candidate against the owned collection.
//
// Input defects (negative price, unknown grade or tier, a malformed snapshot)
// fail with a [*ValidationError] before any calculator runs. A bad [Config]
// fails with a plain error. Soft conditions never fail; they zero the
// affected factor and surface a [Warning].
func Calculate(cfg Config, c Candidate, owned Collection) (*Breakdown, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scoring: invalid config: %w", err)
	}
	if err := validateInput(c, owned); err != nil {
		return nil, err
	}

	bonuses := resolveBonuses(cfg, c)

	investment := calculateInvestment(cfg, c.PurchasePrice, c.ValueMid)
	strategic := calculateStrategic(cfg, c, bonuses)
	collection := calculateCollection(cfg, c, owned)

	overall := investment.Points + strategic.Points + collection.Points

	return &Breakdown{
		InvestmentGrade:  investment.Points,
		StrategicFit:     strategic.Points,
		CollectionImpact: collection.Points,
		OverallScore:     overall,
		Disposition:      cfg.Disposition(overall),
		Details: Details{
			Investment: investment,
			Strategic:  strategic,
			Collection: collection,
		},
	}, nil
}

// validateInput checks everything the calculators assume.
func validateInput(c Candidate, owned Collection) error {
	p := &problems{}

	if c.PurchasePrice.IsNegative() {
		p.addf("purchase_price", "must not be negative, got %s", c.PurchasePrice.String())
	}
	if c.ConditionGrade != nil && !c.ConditionGrade.IsValid() {
		p.addf("condition_grade", "unknown grade %q", *c.ConditionGrade)
	}
	validateReference(p, "author", c.Author)
	validateReference(p, "publisher", c.Publisher)

	seen := make(map[int]bool, len(owned))
	for i, book := range owned {
		field := fmt.Sprintf("collection[%d].id", i)
		if book.ID <= 0 {
			p.addf(field, "must be positive, got %d", book.ID)
			continue
		}
		if seen[book.ID] {
			p.addf(field, "duplicate identifier %d", book.ID)
		}
		seen[book.ID] = true
	}

	return p.err()
}

func validateReference(p *problems, field string, ref *Reference) {
	if ref == nil {
		return
	}
	if ref.Tier != nil && !ref.Tier.IsValid() {
		p.addf(field+".tier", "unknown tier %q", *ref.Tier)
	}
}
