package response

import (
	"errors"
	"net/http"

	"github.com/shopstaff/staffpay-backend-go/internal/domain/advance"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/attendance"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/auth"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/master/location"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/master/salarycategory"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/payroll"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/staff"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/user"
	"github.com/shopstaff/staffpay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrOldRecordNotFound):
		NotFound(w, "Archived staff record not found")
	case errors.Is(err, staff.ErrStaffInactive):
		BadRequest(w, "Staff member is not active", nil)
	case errors.Is(err, staff.ErrAlreadyArchived):
		Conflict(w, "Staff member is already archived")
	case errors.Is(err, staff.ErrInvalidLocation):
		BadRequest(w, "Unknown shop location", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrStaffNotRostered):
		BadRequest(w, "Staff member is not on the full-time roster", nil)

	// Advance ledger errors
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance record not found")
	case errors.Is(err, advance.ErrInvalidMonth):
		BadRequest(w, "Month must be between 0 and 11", nil)

	// Payroll errors
	case errors.Is(err, payroll.ErrInvalidMonth):
		BadRequest(w, "Month must be between 0 and 11", nil)
	case errors.Is(err, payroll.ErrNegativeSalary):
		BadRequest(w, "Salary components must be non-negative", nil)
	case errors.Is(err, payroll.ErrPartTimeStaffNotFound):
		NotFound(w, "No part-time records for that name and month")

	// Master data errors
	case errors.Is(err, location.ErrLocationNotFound):
		NotFound(w, "Location not found")
	case errors.Is(err, location.ErrLocationExists):
		Conflict(w, "Location name already exists")
	case errors.Is(err, salarycategory.ErrCategoryNotFound):
		NotFound(w, "Salary category not found")
	case errors.Is(err, salarycategory.ErrCategoryExists):
		Conflict(w, "Salary category name already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
