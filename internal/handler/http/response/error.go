package response

import (
	"errors"
	"net/http"

	"github.com/paywise-hr/payroll-backend-go/internal/domain/compensation"
	"github.com/paywise-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paywise-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/paywise-hr/payroll-backend-go/internal/pkg/validator"
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
	// Payroll domain errors
	case errors.Is(err, payroll.ErrCycleNotFound):
		NotFound(w, "Payroll cycle not found")
	case errors.Is(err, payroll.ErrPayrollSettingsNotFound):
		NotFound(w, "Payroll settings not found")
	case errors.Is(err, payroll.ErrCycleAlreadyExists):
		Conflict(w, "A payroll cycle already exists for this period")
	case errors.Is(err, payroll.ErrIllegalTransition):
		Conflict(w, "Payroll cycle is not in a state that allows this action")
	case errors.Is(err, payroll.ErrCycleLocked):
		Conflict(w, "Payroll cycle is locked and can no longer be regenerated")
	case errors.Is(err, payroll.ErrNoPayrollItems):
		BadRequest(w, "Payroll cycle has no items; generate payroll first", nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this company")

	// Compensation domain errors
	case errors.Is(err, compensation.ErrCompensationMissing):
		NotFound(w, "Employee has no compensation structure")
	case errors.Is(err, compensation.ErrEffectiveFromConflict):
		Conflict(w, "A compensation structure with this effective date already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
