// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Edits scoring configuration and everything below.
	RoleAdmin UserRole = "admin"

	// Maintains books and reference tiers, persists score refreshes.
	RoleCurator UserRole = "curator"

	// Reads the catalogue and requests score breakdowns.
	RoleViewer UserRole = "viewer"
)

// IsValid reports whether r is a recognised role.
func (r UserRole) IsValid() bool {
	return r.level() > 0
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale leaves room for intermediate roles
	switch r {
	case RoleAdmin:
		return 30
	case RoleCurator:
		return 20
	case RoleViewer:
		return 10
	default:
		return 0
	}
}
