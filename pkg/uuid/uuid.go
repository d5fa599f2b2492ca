// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuid generates correlation identifiers.
//
// Catalogue rows use integer keys; UUIDs only appear as request and token IDs,
// where v7 keeps log lines sortable by time.
package uuid

import "github.com/google/uuid"

// NewRequestID returns a UUIDv7 string, falling back to v4 if the clock read fails.
func NewRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// IsValid reports whether s parses as a UUID of any version.
func IsValid(s string) bool {
	return uuid.Validate(s) == nil
}
