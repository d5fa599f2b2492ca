// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import (
	"context"
	"time"
)

// # Persistence Contracts

// Repository reads and writes rows of system.setting.
type Repository interface {

	/*
		Get fetches a setting row by key.

		Returns:
		  - *Record: The stored row
		  - error: dberr.ErrNotFound when the key was never written
	*/
	Get(context context.Context, key string) (*Record, error)

	// Put upserts the row and returns it as stored.
	Put(context context.Context, key string, value []byte, updatedBy string) (*Record, error)
}

// Cache holds serialised [ScoringSettings] between requests.
type Cache interface {

	// Get returns the cached bytes; found is false on a miss.
	Get(context context.Context, key string) (value []byte, found bool, err error)

	// Set stores value with a time-to-live.
	Set(context context.Context, key string, value []byte, ttl time.Duration) error

	// Delete evicts key. Deleting a missing key is not an error.
	Delete(context context.Context, key string) error
}
