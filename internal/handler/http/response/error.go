package response

import (
	"errors"
	"net/http"

	"github.com/workpay/workpay-backend-go/internal/domain/attendance"
	"github.com/workpay/workpay-backend-go/internal/domain/auth"
	"github.com/workpay/workpay-backend-go/internal/domain/employee"
	"github.com/workpay/workpay-backend-go/internal/domain/payroll"
	"github.com/workpay/workpay-backend-go/internal/pkg/database"
	"github.com/workpay/workpay-backend-go/internal/pkg/validator"
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
	// Auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrElevatedAccessRequired):
		Forbidden(w, "Admin or HR access required")
	case errors.Is(err, auth.ErrTokenIssuanceDisabled):
		Forbidden(w, "Token issuance is disabled in this environment")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNoOpenCheckIn):
		Conflict(w, "No active check-in found for today")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidAmount):
		BadRequest(w, "Monetary amounts must be non-negative", nil)
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrNotPending):
		Conflict(w, "Payroll record has already been approved")
	case errors.Is(err, payroll.ErrNoPayrollGenerated):
		BadRequest(w, "No active employees to generate payroll for", nil)

	// Store failures: the cause is logged upstream, never echoed to callers
	case errors.Is(err, database.ErrUnavailable):
		ServiceUnavailable(w, "Record store is unavailable, try again later")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
