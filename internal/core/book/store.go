// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"

	"github.com/taibuivan/folio/internal/core/scoring"
)

// # Book Data Access

// Repository defines the data access contract for catalogue books.
type Repository interface {

	/*
		List retrieves a filtered, paginated page of books, newest first.

		Parameters:
		  - context: context.Context
		  - filter: Filter
		  - limit, offset: int

		Returns:
		  - []*Book: Matching rows
		  - int: Total matching count
		  - error: Database execution errors
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Book, int, error)

	/*
		Get retrieves a single book by primary key.

		Returns:
		  - *Book: Hydrated row
		  - error: dberr.ErrNotFound if missing
	*/
	Get(context context.Context, id int) (*Book, error)

	// Create persists a new book and fills ID and timestamps.
	Create(context context.Context, book *Book) error

	// UpdateStatus moves a book to a new lifecycle state.
	UpdateStatus(context context.Context, id int, status Status) error

	/*
		ListOwned reads the owned-collection snapshot in a single query.

		Only books whose status is in [OwnedStatuses] are returned, carrying id,
		title and author id.

		Returns:
		  - scoring.Collection: Snapshot, ordered by id
		  - error: Database execution errors
	*/
	ListOwned(context context.Context) (scoring.Collection, error)

	// SaveScores stores the three dimension totals and the scoring timestamp.
	SaveScores(context context.Context, id int, scores Scores) error
}
