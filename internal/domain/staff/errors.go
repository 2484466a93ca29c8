package staff

import "errors"

// Staff domain errors
var (
	// ErrStaffNotFound covers both a missing record and a record owned by a
	// different tenant, so existence never leaks across tenants.
	ErrStaffNotFound = errors.New("staff member not found")
)
