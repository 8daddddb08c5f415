package employee

import (
	"github.com/paywise-hr/payroll-backend-go/internal/domain/compensation"
	"github.com/paywise-hr/payroll-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Status        string `json:"status,omitempty"` // defaults to active
	DateOfJoining string `json:"date_of_joining"`  // "YYYY-MM-DD"

	// Optional starting compensation, created atomically with the employee.
	InitialCompensation *compensation.CreateStructureRequest `json:"initial_compensation,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_of_joining", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, []string{
		string(StatusActive), string(StatusInactive), string(StatusOnLeave), string(StatusTerminated),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of active, inactive, on_leave, terminated"})
	}

	if len(errs) > 0 {
		return errs
	}
	if r.InitialCompensation != nil {
		return r.InitialCompensation.Validate()
	}
	return nil
}

type EmployeeResponse struct {
	ID            string `json:"id"`
	CompanyID     string `json:"company_id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Status        string `json:"status"`
	DateOfJoining string `json:"date_of_joining"`
}
