package compensation

import (
	"context"
	"time"
)

type CompensationRepository interface {
	Create(ctx context.Context, s Structure) (Structure, error)
	// GetEffective returns the structure with the greatest effective_from
	// on or before asOf, or ErrCompensationMissing when none exists.
	GetEffective(ctx context.Context, employeeID, companyID string, asOf time.Time) (Structure, error)
	ListByEmployee(ctx context.Context, employeeID, companyID string) ([]Structure, error)
}
