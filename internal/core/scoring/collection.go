// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package scoring

import (
	"fmt"

	"github.com/taibuivan/folio/pkg/slice"
)

// CollectionDetail explains the collection impact. It is the only dimension
// whose points may be negative.
type CollectionDetail struct {
	Points          int       `json:"points"`
	Factors         []Factor  `json:"factors"`
	Warnings        []Warning `json:"warnings"`
	DuplicateBookID *int      `json:"duplicate_book_id"`
}

// collectionOutcome is what a single rule contributes.
type collectionOutcome struct {
	factors     []Factor
	warnings    []Warning
	duplicateOf *int
}

// collectionRule inspects the candidate against the owned books that share
// its author (the candidate itself already excluded).
type collectionRule func(cfg Config, c Candidate, sameAuthor []OwnedBook) collectionOutcome

// collectionRules run in order. New warning kinds are added as new rules;
// the CollectionDetail shape does not change.
var collectionRules = []collectionRule{
	authorGapRule,
	duplicateRule,
}

func calculateCollection(cfg Config, c Candidate, owned Collection) CollectionDetail {
	detail := CollectionDetail{
		Factors:  []Factor{},
		Warnings: []Warning{},
	}

	sameAuthor := booksBySameAuthor(c, owned)

	for _, rule := range collectionRules {
		outcome := rule(cfg, c, sameAuthor)
		detail.Factors = append(detail.Factors, outcome.factors...)
		detail.Warnings = append(detail.Warnings, outcome.warnings...)
		if outcome.duplicateOf != nil && detail.DuplicateBookID == nil {
			detail.DuplicateBookID = outcome.duplicateOf
		}
	}

	for _, f := range detail.Factors {
		detail.Points += f.Points
	}
	return detail
}

// booksBySameAuthor filters the snapshot to the candidate's author, skipping
// the candidate's own record when it is already owned.
func booksBySameAuthor(c Candidate, owned Collection) []OwnedBook {
	if c.Author == nil {
		return nil
	}

	return slice.Filter(owned, func(book OwnedBook) bool {
		if c.ID != 0 && book.ID == c.ID {
			return false
		}
		return book.AuthorID != nil && *book.AuthorID == c.Author.ID
	})
}

// # Rules

// authorGapRule always emits exactly one author_gap factor.
func authorGapRule(cfg Config, c Candidate, sameAuthor []OwnedBook) collectionOutcome {
	var factor Factor

	switch {
	case c.Author == nil:
		factor = Factor{Name: FactorAuthorGap, Label: "Author gap (author not set)"}
	case len(sameAuthor) == 0:
		factor = Factor{Name: FactorAuthorGap, Label: "First work by this author", Points: cfg.FirstWorkBonus}
	default:
		factor = Factor{
			Name:   FactorAuthorGap,
			Label:  fmt.Sprintf("Fills author gap (%d existing)", len(sameAuthor)),
			Points: cfg.AuthorGapBonus,
		}
	}

	return collectionOutcome{factors: []Factor{factor}}
}

// duplicateRule emits a penalty for the first owned book, in snapshot order,
// whose normalized title matches the candidate's.
func duplicateRule(cfg Config, c Candidate, sameAuthor []OwnedBook) collectionOutcome {
	key := normalizeTitle(c.Title)
	if key == "" {
		return collectionOutcome{}
	}

	for _, book := range sameAuthor {
		if normalizeTitle(book.Title) != key {
			continue
		}
		id := book.ID
		return collectionOutcome{
			factors: []Factor{{
				Name:   FactorDuplicate,
				Label:  fmt.Sprintf("Duplicate of %q (#%d)", book.Title, book.ID),
				Points: cfg.DuplicatePenalty,
			}},
			warnings:    []Warning{WarningDuplicate},
			duplicateOf: &id,
		}
	}

	return collectionOutcome{}
}
