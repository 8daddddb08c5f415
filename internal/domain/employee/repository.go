package employee

import (
	"context"
	"time"
)

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
	// GetEligible returns active employees with date_of_joining <= asOf,
	// ordered by ascending join date (then id) so orchestrator runs process
	// employees in a stable order.
	GetEligible(ctx context.Context, companyID string, asOf time.Time) ([]Employee, error)
	// EarliestJoinDate returns the minimum date_of_joining across the
	// company, or ok=false when the company has no employees.
	EarliestJoinDate(ctx context.Context, companyID string) (time.Time, bool, error)
	// ListCompanyIDs returns every company that has at least one employee.
	// Used by the cron sweep to fan out per company.
	ListCompanyIDs(ctx context.Context) ([]string, error)
}
