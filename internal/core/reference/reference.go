// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reference manages the tiered master data of Folio: authors, publishers
and binders.

Each kind lives in its own table but shares one shape. Curators assign a
reputation [scoring.Tier] and a preferred flag; the book service resolves these
into [scoring.Reference] values when a book is scored.

# Access Control

  - Viewer: list and read.
  - Curator: create, rename, and re-tier.
*/
package reference

import (
	"time"

	"github.com/taibuivan/folio/internal/core/scoring"
	"github.com/taibuivan/folio/internal/platform/database/schema"
)

// # Kinds

// Kind selects one of the reference tables.
type Kind string

const (
	KindAuthor    Kind = "author"
	KindPublisher Kind = "publisher"
	KindBinder    Kind = "binder"
)

// Kinds lists every reference kind in route order.
var Kinds = []Kind{KindAuthor, KindPublisher, KindBinder}

// IsValid reports whether k names a reference table.
func (k Kind) IsValid() bool {
	switch k {
	case KindAuthor, KindPublisher, KindBinder:
		return true
	}
	return false
}

// Label is the capitalised singular used in error messages.
func (k Kind) Label() string {
	switch k {
	case KindAuthor:
		return "Author"
	case KindPublisher:
		return "Publisher"
	case KindBinder:
		return "Binder"
	}
	return "Reference"
}

// table maps the kind to its schema definition.
func (k Kind) table() schema.CatalogReferenceTable {
	switch k {
	case KindPublisher:
		return schema.CatalogPublisher
	case KindBinder:
		return schema.CatalogBinder
	default:
		return schema.CatalogAuthor
	}
}

// # Entity

// Entity is one author, publisher or binder row.
type Entity struct {
	ID        int           `json:"id"`
	Kind      Kind          `json:"kind"`
	Name      string        `json:"name"`
	Tier      *scoring.Tier `json:"tier"`
	Preferred bool          `json:"preferred"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ToScoring projects the entity into the engine's reference type.
func (e *Entity) ToScoring() *scoring.Reference {
	if e == nil {
		return nil
	}
	return &scoring.Reference{
		ID:        e.ID,
		Name:      e.Name,
		Tier:      e.Tier,
		Preferred: e.Preferred,
	}
}

// # Inputs

// Filter narrows a reference listing.
type Filter struct {
	Query         string         // Case-insensitive substring of name
	Tiers         []scoring.Tier // Empty means any tier, including none
	PreferredOnly bool
}

// UpdateInput is a partial update. Nil fields are left untouched; an empty
// Tier clears the classification.
type UpdateInput struct {
	Name      *string `json:"name"`
	Tier      *string `json:"tier"`
	Preferred *bool   `json:"preferred"`
}

// CreateInput carries the fields of a new entity.
type CreateInput struct {
	Name      string  `json:"name"`
	Tier      *string `json:"tier"`
	Preferred bool    `json:"preferred"`
}

// # Field Identifiers

const (
	FieldName      = "name"
	FieldTier      = "tier"
	FieldPreferred = "preferred"

	maxNameLength = 200
)
