package response

import (
	"errors"
	"net/http"

	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/auth"
	"github.com/staffbook/staffbook-backend-go/internal/domain/cashbook"
	"github.com/staffbook/staffbook-backend-go/internal/domain/staff"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid mobile number or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, auth.ErrMobileExists):
		Conflict(w, "Mobile number already registered")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance not found, mark attendance as present first")
	case errors.Is(err, attendance.ErrOvertimeRequiresPresent):
		BadRequest(w, "Overtime can only be marked for present attendance", nil)

	// Cashbook domain errors
	case errors.Is(err, cashbook.ErrIncomeNotFound):
		NotFound(w, "Income not found or you do not have permission to access it")
	case errors.Is(err, cashbook.ErrExpenseNotFound):
		NotFound(w, "Expense not found or you do not have permission to access it")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
