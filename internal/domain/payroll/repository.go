package payroll

import "context"

// CycleTransition carries the audit payload of a workflow transition. Actor
// is the user id taken from the verified claims; Reason is only set on
// rejections.
type CycleTransition struct {
	From   CycleStatus
	To     CycleStatus
	Actor  string
	Reason *string
}

// PayrollRepository defines data access methods for the payroll engine.
// All methods include companyID to prevent cross-company data access; the
// company scope on every statement is the single most safety-critical
// invariant of the engine.
type PayrollRepository interface {
	// Settings
	GetSettings(ctx context.Context, companyID string) (PayrollSettings, error)
	UpsertSettings(ctx context.Context, settings PayrollSettings) (PayrollSettings, error)

	// Cycles
	CreateCycle(ctx context.Context, cycle PayrollCycle) (PayrollCycle, error)
	GetCycleByID(ctx context.Context, id string, companyID string) (PayrollCycle, error)
	GetCycleByPeriod(ctx context.Context, companyID string, year, month int) (PayrollCycle, error)
	ListCycles(ctx context.Context, companyID string, filter CycleFilter) ([]PayrollCycle, int64, error)
	// TransitionCycle performs a compare-and-swap on the cycle status: the
	// row is updated only when its current status equals t.From. A cycle in
	// any other status yields ErrIllegalTransition.
	TransitionCycle(ctx context.Context, companyID, cycleID string, t CycleTransition) (PayrollCycle, error)
	// RefreshCycleTotals recomputes total_employees and total_amount from
	// the cycle's persisted items.
	RefreshCycleTotals(ctx context.Context, companyID, cycleID string) (PayrollCycle, error)
	// CompleteElapsedCycles force-moves every sweepable cycle whose period
	// is strictly before (year, month) to completed. Returns rows affected.
	CompleteElapsedCycles(ctx context.Context, companyID string, year, month int) (int64, error)

	// Items
	UpsertItem(ctx context.Context, item PayrollItem) (PayrollItem, error)
	ListItemsByCycle(ctx context.Context, cycleID, companyID string) ([]PayrollItem, error)
	CountItemsByCycle(ctx context.Context, cycleID, companyID string) (int, error)
	ListEmployeeIDsWithItems(ctx context.Context, cycleID, companyID string) ([]string, error)
	ListItemsByEmployee(ctx context.Context, employeeID, companyID string) ([]PayrollItem, error)

	// Aggregations
	GetCycleSummary(ctx context.Context, companyID string, year, month int) (CycleSummary, error)
}
