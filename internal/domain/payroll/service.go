package payroll

import "context"

// PayrollService is the cycle processing engine surface. The company scope
// and acting user are taken from the verified JWT claims in ctx.
type PayrollService interface {
	// Settings
	GetSettings(ctx context.Context) (PayrollSettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdatePayrollSettingsRequest) (PayrollSettingsResponse, error)

	// Cycle lifecycle
	CreateCycle(ctx context.Context, req CreateCycleRequest) (CycleResponse, error)
	GetCycle(ctx context.Context, id string) (CycleResponse, error)
	ListCycles(ctx context.Context, filter CycleFilter) (ListCycleResponse, error)
	SubmitCycle(ctx context.Context, id string) (CycleResponse, error)
	ApproveCycle(ctx context.Context, id string) (CycleResponse, error)
	RejectCycle(ctx context.Context, id string, req RejectCycleRequest) (CycleResponse, error)
	ProcessCycle(ctx context.Context, id string) (CycleResponse, error)

	// Orchestration
	GeneratePayroll(ctx context.Context, cycleID string) (GenerateResult, error)
	ListCycleItems(ctx context.Context, cycleID string) ([]PayrollItemResponse, error)
	GetPayslipHistory(ctx context.Context, employeeID string) ([]PayrollItemResponse, error)
	GetSummary(ctx context.Context, year, month int) (CycleSummaryResponse, error)

	// BackfillCompany materializes and processes every past month's cycle
	// for one company, then completes elapsed cycles. Used by the payslip
	// history path and the cron sweep.
	BackfillCompany(ctx context.Context, companyID string) error
}
