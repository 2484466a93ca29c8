package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance not found, mark attendance as present first")

	// ErrOvertimeRequiresPresent is a business-rule violation, distinct from
	// request validation: overtime can only be set on a present day.
	ErrOvertimeRequiresPresent = errors.New("overtime can only be marked for present attendance")
)
