// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import "context"

// # Reference Data Access

// Repository defines the data access contract for the tiered reference tables.
type Repository interface {

	/*
		List retrieves a filtered, paginated page of one kind, ordered by name.

		Parameters:
		  - context: context.Context
		  - kind: Kind (selects the table)
		  - filter: Filter
		  - limit, offset: int (Pagination bounds)

		Returns:
		  - []*Entity: Matching rows
		  - int: Total matching count for pagination metadata
		  - error: Database execution errors
	*/
	List(context context.Context, kind Kind, filter Filter, limit, offset int) ([]*Entity, int, error)

	/*
		Get retrieves a single entity by primary key.

		Returns:
		  - *Entity: Hydrated entity
		  - error: dberr.ErrNotFound if missing
	*/
	Get(context context.Context, kind Kind, id int) (*Entity, error)

	// Create persists a new entity and fills ID and timestamps.
	Create(context context.Context, entity *Entity) error

	// Update overwrites name, tier and preferred, refreshing UpdatedAt.
	Update(context context.Context, entity *Entity) error
}
