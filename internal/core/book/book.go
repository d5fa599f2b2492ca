// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package book manages the acquisition catalogue and exposes score actions.

A book moves from EVALUATING (a candidate on a dealer list) through IN_TRANSIT
to ON_HAND; REMOVED covers deaccessions and passed-over candidates. Books in
transit or on hand form the owned collection that every candidate is compared
against.

# Scoring Flow

 1. Load the book and resolve its author and publisher tiers.
 2. Convert purchase price and mid valuation into the base currency.
 3. Read the owned-collection snapshot and the effective scoring configuration.
 4. Run [scoring.Calculate] and return the full breakdown.

Only a refresh persists anything, and only the three dimension totals.
*/
package book

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/taibuivan/folio/internal/core/scoring"
)

// # Lifecycle

// Status is the acquisition state of a book.
type Status string

const (
	StatusEvaluating Status = "EVALUATING"
	StatusInTransit  Status = "IN_TRANSIT"
	StatusOnHand     Status = "ON_HAND"
	StatusRemoved    Status = "REMOVED"
)

// OwnedStatuses are the states that count as part of the owned collection.
var OwnedStatuses = []Status{StatusInTransit, StatusOnHand}

// IsValid reports whether s is a recognised [Status].
func (s Status) IsValid() bool {
	switch s {
	case StatusEvaluating, StatusInTransit, StatusOnHand, StatusRemoved:
		return true
	}
	return false
}

// IsOwned reports whether a book in this state belongs to the collection.
func (s Status) IsOwned() bool {
	return s == StatusInTransit || s == StatusOnHand
}

// # Aggregate

// Book is one catalogue row. Money fields are in PurchaseCurrency.
type Book struct {
	ID               int              `json:"id"`
	Title            string           `json:"title"`
	AuthorID         *int             `json:"author_id"`
	PublisherID      *int             `json:"publisher_id"`
	BinderID         *int             `json:"binder_id"`
	PurchasePrice    *decimal.Decimal `json:"purchase_price"`
	PurchaseCurrency string           `json:"purchase_currency"`
	ValueMid         *decimal.Decimal `json:"value_mid"`
	PublicationYear  *int             `json:"publication_year"`
	ConditionGrade   *string          `json:"condition_grade"`
	CompleteSet      *bool            `json:"complete_set"`
	Status           Status           `json:"status"`

	// Stored dimension totals from the last refresh. Details are never stored.
	InvestmentGrade  *int       `json:"investment_grade"`
	StrategicFit     *int       `json:"strategic_fit"`
	CollectionImpact *int       `json:"collection_impact"`
	ScoredAt         *time.Time `json:"scored_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Draft returns the scoreable fields of a stored book.
func (b *Book) Draft() Draft {
	return Draft{
		Title:            b.Title,
		AuthorID:         b.AuthorID,
		PublisherID:      b.PublisherID,
		BinderID:         b.BinderID,
		PurchasePrice:    b.PurchasePrice,
		PurchaseCurrency: b.PurchaseCurrency,
		ValueMid:         b.ValueMid,
		PublicationYear:  b.PublicationYear,
		ConditionGrade:   b.ConditionGrade,
		CompleteSet:      b.CompleteSet,
	}
}

// # Inputs

// Draft carries the fields of a new book or of an unsaved preview candidate.
type Draft struct {
	Title            string           `json:"title"`
	AuthorID         *int             `json:"author_id"`
	PublisherID      *int             `json:"publisher_id"`
	BinderID         *int             `json:"binder_id"`
	PurchasePrice    *decimal.Decimal `json:"purchase_price"`
	PurchaseCurrency string           `json:"purchase_currency"`
	ValueMid         *decimal.Decimal `json:"value_mid"`
	PublicationYear  *int             `json:"publication_year"`
	ConditionGrade   *string          `json:"condition_grade"`
	CompleteSet      *bool            `json:"complete_set"`
}

// CreateInput is the POST /books body.
type CreateInput struct {
	Draft
	Status Status `json:"status"`
}

// Filter narrows a book listing.
type Filter struct {
	Query     string   // Case-insensitive substring of title
	Statuses  []Status // Empty means every status
	AuthorIDs []int
}

// Scores are the persisted dimension totals.
type Scores struct {
	InvestmentGrade  int
	StrategicFit     int
	CollectionImpact int
	ScoredAt         time.Time
}

// # Output

// ScoreResult is a breakdown plus the money context it was computed in.
type ScoreResult struct {
	BookID        int             `json:"book_id,omitempty"`
	BaseCurrency  string          `json:"base_currency"`
	PurchasePrice decimal.Decimal `json:"purchase_price_base"`
	Persisted     bool            `json:"persisted"`

	*scoring.Breakdown
}

// # Field Identifiers

const (
	FieldTitle            = "title"
	FieldPurchasePrice    = "purchase_price"
	FieldPurchaseCurrency = "purchase_currency"
	FieldValueMid         = "value_mid"
	FieldPublicationYear  = "publication_year"
	FieldConditionGrade   = "condition_grade"
	FieldStatus           = "status"

	maxTitleLength = 500
	minYear        = 1400
	maxYear        = 2100
)
