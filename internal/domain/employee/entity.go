package employee

import "time"

type Employee struct {
	ID            string
	CompanyID     string
	FullName      string
	Email         string
	Status        Status
	DateOfJoining time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusOnLeave    Status = "on_leave"
	StatusTerminated Status = "terminated"
)

// EligibleFor reports whether the employee takes part in the payroll run of
// the month ending at monthEnd: only active employees who had joined on or
// before the month end are paid.
func (e Employee) EligibleFor(monthEnd time.Time) bool {
	return e.Status == StatusActive && !e.DateOfJoining.After(monthEnd)
}
