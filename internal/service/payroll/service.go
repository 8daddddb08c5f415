package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paywise-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paywise-hr/payroll-backend-go/internal/domain/compensation"
	"github.com/paywise-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paywise-hr/payroll-backend-go/internal/domain/leave"
	"github.com/paywise-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/paywise-hr/payroll-backend-go/internal/pkg/database"
)

type PayrollServiceImpl struct {
	db               *database.DB
	payrollRepo      payroll.PayrollRepository
	employeeRepo     employee.EmployeeRepository
	compensationRepo compensation.CompensationRepository
	lop              *LOPAggregator
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	compensationRepo compensation.CompensationRepository,
	leaveRepo leave.LeaveRequestRepository,
	attendanceRepo attendance.AttendanceRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:               db,
		payrollRepo:      payrollRepo,
		employeeRepo:     employeeRepo,
		compensationRepo: compensationRepo,
		lop:              NewLOPAggregator(leaveRepo, attendanceRepo),
	}
}

// Helper to get company_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return companyID, userID, nil
}

// ========== SETTINGS ==========

func (s *PayrollServiceImpl) GetSettings(ctx context.Context) (payroll.PayrollSettingsResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}

	settings, err := s.loadSettings(ctx, companyID)
	if err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}

	return mapToSettingsResponse(settings), nil
}

func (s *PayrollServiceImpl) UpdateSettings(ctx context.Context, req payroll.UpdatePayrollSettingsRequest) (payroll.PayrollSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}

	current, err := s.loadSettings(ctx, companyID)
	if err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}

	// Apply updates
	if req.PFRate != nil {
		current.PFRate = *req.PFRate
	}
	if req.ESIRate != nil {
		current.ESIRate = *req.ESIRate
	}
	if req.PTRate != nil {
		current.PTRate = *req.PTRate
	}
	if req.TDSThreshold != nil {
		current.TDSThreshold = *req.TDSThreshold
	}
	if req.BasicPercent != nil {
		current.BasicPercent = *req.BasicPercent
	}
	if req.HRAPercent != nil {
		current.HRAPercent = *req.HRAPercent
	}
	if req.SpecialAllowancePercent != nil {
		current.SpecialAllowancePercent = *req.SpecialAllowancePercent
	}

	updated, err := s.payrollRepo.UpsertSettings(ctx, current)
	if err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}

	return mapToSettingsResponse(updated), nil
}

// loadSettings returns the company's stored settings, falling back to the
// documented defaults when no row exists.
func (s *PayrollServiceImpl) loadSettings(ctx context.Context, companyID string) (payroll.PayrollSettings, error) {
	settings, err := s.payrollRepo.GetSettings(ctx, companyID)
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollSettingsNotFound) {
			return payroll.DefaultSettings(companyID), nil
		}
		return payroll.PayrollSettings{}, err
	}
	return settings, nil
}

// ========== CYCLES ==========

func (s *PayrollServiceImpl) CreateCycle(ctx context.Context, req payroll.CreateCycleRequest) (payroll.CycleResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.CycleResponse{}, err
	}

	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	if _, err := ResolveTimeWindow(req.PeriodYear, req.PeriodMonth); err != nil {
		return payroll.CycleResponse{}, err
	}

	cycle := payroll.PayrollCycle{
		CompanyID:   companyID,
		PeriodYear:  req.PeriodYear,
		PeriodMonth: req.PeriodMonth,
		Status:      payroll.CycleStatusDraft,
	}
	if userID != "" {
		cycle.CreatedBy = &userID
	}
	if req.Payday != nil {
		payday, err := time.Parse("2006-01-02", *req.Payday)
		if err == nil {
			cycle.Payday = &payday
		}
	}

	created, err := s.payrollRepo.CreateCycle(ctx, cycle)
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	return mapToCycleResponse(created), nil
}

func (s *PayrollServiceImpl) GetCycle(ctx context.Context, id string) (payroll.CycleResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	cycle, err := s.payrollRepo.GetCycleByID(ctx, id, companyID)
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	return mapToCycleResponse(cycle), nil
}

func (s *PayrollServiceImpl) ListCycles(ctx context.Context, filter payroll.CycleFilter) (payroll.ListCycleResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.ListCycleResponse{}, err
	}

	cycles, totalCount, err := s.payrollRepo.ListCycles(ctx, companyID, filter)
	if err != nil {
		return payroll.ListCycleResponse{}, err
	}

	data := make([]payroll.CycleResponse, 0, len(cycles))
	for _, c := range cycles {
		data = append(data, mapToCycleResponse(c))
	}

	return payroll.ListCycleResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// ========== ORCHESTRATION ==========

// GeneratePayroll runs the per-employee pipeline for one cycle: resolve the
// effective compensation, aggregate LOP days, calculate the salary and upsert
// the payroll item keyed by (cycle, employee). Re-running is idempotent and
// always reflects the data at the time of the run.
func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, cycleID string) (payroll.GenerateResult, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.GenerateResult{}, err
	}

	cycle, err := s.payrollRepo.GetCycleByID(ctx, cycleID, companyID)
	if err != nil {
		return payroll.GenerateResult{}, err
	}
	if cycle.Status.IsLocked() {
		return payroll.GenerateResult{}, payroll.ErrCycleLocked
	}

	window, err := ResolveTimeWindow(cycle.PeriodYear, cycle.PeriodMonth)
	if err != nil {
		return payroll.GenerateResult{}, err
	}

	settings, err := s.loadSettings(ctx, companyID)
	if err != nil {
		return payroll.GenerateResult{}, err
	}

	employees, err := s.employeeRepo.GetEligible(ctx, companyID, window.MonthEnd)
	if err != nil {
		return payroll.GenerateResult{}, fmt.Errorf("failed to get eligible employees: %w", err)
	}

	processed, skipped := s.processEmployees(ctx, cycle, window, settings, employees)

	// Aggregate persistence is fatal, unlike per-employee failures.
	updated, err := s.payrollRepo.RefreshCycleTotals(ctx, companyID, cycle.ID)
	if err != nil {
		return payroll.GenerateResult{}, fmt.Errorf("failed to refresh cycle totals: %w", err)
	}

	return payroll.GenerateResult{
		CycleID:        cycle.ID,
		Processed:      processed,
		Skipped:        skipped,
		TotalEmployees: updated.TotalEmployees,
		TotalAmount:    updated.TotalAmount,
	}, nil
}

// processEmployees runs the calculation pipeline for each employee in order.
// Employees are already sorted by ascending join date so partial failures
// are reproducible. A failure for one employee is logged and skipped; it
// never aborts the batch.
func (s *PayrollServiceImpl) processEmployees(
	ctx context.Context,
	cycle payroll.PayrollCycle,
	window TimeWindow,
	settings payroll.PayrollSettings,
	employees []employee.Employee,
) (processed, skipped int) {
	for _, emp := range employees {
		if err := s.processEmployee(ctx, cycle, window, settings, emp); err != nil {
			if errors.Is(err, compensation.ErrCompensationMissing) {
				slog.Info("employee has no effective compensation, skipping",
					"cycle_id", cycle.ID, "employee_id", emp.ID,
					"period_year", window.Year, "period_month", window.Month)
			} else {
				slog.Error("failed to process employee payroll, skipping",
					"cycle_id", cycle.ID, "employee_id", emp.ID, "error", err)
			}
			skipped++
			continue
		}
		processed++
	}
	return processed, skipped
}

func (s *PayrollServiceImpl) processEmployee(
	ctx context.Context,
	cycle payroll.PayrollCycle,
	window TimeWindow,
	settings payroll.PayrollSettings,
	emp employee.Employee,
) error {
	comp, err := s.compensationRepo.GetEffective(ctx, emp.ID, cycle.CompanyID, window.MonthEnd)
	if err != nil {
		return err
	}

	totals, err := s.lop.Totals(ctx, emp.ID, cycle.CompanyID, window)
	if err != nil {
		return err
	}

	breakdown := CalculateSalary(comp, totals, settings)

	item := payroll.PayrollItem{
		PayrollCycleID:   cycle.ID,
		EmployeeID:       emp.ID,
		CompanyID:        cycle.CompanyID,
		Basic:            breakdown.Basic,
		HRA:              breakdown.HRA,
		SpecialAllowance: breakdown.SpecialAllowance,
		DA:               breakdown.DA,
		LTA:              breakdown.LTA,
		Bonus:            breakdown.Bonus,
		GrossSalary:      breakdown.GrossSalary,
		PFDeduction:      breakdown.PFDeduction,
		ESIDeduction:     breakdown.ESIDeduction,
		PTDeduction:      breakdown.PTDeduction,
		TDSDeduction:     breakdown.TDSDeduction,
		TotalDeductions:  breakdown.TotalDeductions,
		NetSalary:        breakdown.NetSalary,
		LOPDays:          breakdown.LOPDays,
		PaidDays:         breakdown.PaidDays,
		TotalWorkingDays: breakdown.TotalWorkingDays,
	}

	if _, err := s.payrollRepo.UpsertItem(ctx, item); err != nil {
		return fmt.Errorf("failed to upsert payroll item: %w", err)
	}

	return nil
}

// ========== ITEMS / PAYSLIPS / SUMMARY ==========

func (s *PayrollServiceImpl) ListCycleItems(ctx context.Context, cycleID string) ([]payroll.PayrollItemResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	// Scope check before touching items.
	cycle, err := s.payrollRepo.GetCycleByID(ctx, cycleID, companyID)
	if err != nil {
		return nil, err
	}

	items, err := s.payrollRepo.ListItemsByCycle(ctx, cycle.ID, companyID)
	if err != nil {
		return nil, err
	}

	return mapToItemResponses(items), nil
}

// GetPayslipHistory returns every persisted payroll item for one employee.
// The backfill runs first, so historical payslip queries self-heal even when
// no explicit processing action was taken for a past month.
func (s *PayrollServiceImpl) GetPayslipHistory(ctx context.Context, employeeID string) ([]payroll.PayrollItemResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID, companyID); err != nil {
		return nil, err
	}

	if err := s.BackfillCompany(ctx, companyID); err != nil {
		return nil, fmt.Errorf("failed to backfill payroll history: %w", err)
	}

	items, err := s.payrollRepo.ListItemsByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return nil, err
	}

	return mapToItemResponses(items), nil
}

func (s *PayrollServiceImpl) GetSummary(ctx context.Context, year, month int) (payroll.CycleSummaryResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.CycleSummaryResponse{}, err
	}

	if _, err := ResolveTimeWindow(year, month); err != nil {
		return payroll.CycleSummaryResponse{}, err
	}

	// Summary reads double as the age-out sweep: cycles for elapsed months
	// are force-completed before aggregates are returned.
	now := time.Now().UTC()
	if _, err := s.payrollRepo.CompleteElapsedCycles(ctx, companyID, now.Year(), int(now.Month())); err != nil {
		return payroll.CycleSummaryResponse{}, fmt.Errorf("failed to complete elapsed cycles: %w", err)
	}

	summary, err := s.payrollRepo.GetCycleSummary(ctx, companyID, year, month)
	if err != nil {
		return payroll.CycleSummaryResponse{}, err
	}

	return payroll.CycleSummaryResponse{
		PeriodYear:      summary.PeriodYear,
		PeriodMonth:     summary.PeriodMonth,
		Status:          string(summary.Status),
		TotalEmployees:  summary.TotalEmployees,
		TotalGross:      summary.TotalGross,
		TotalDeductions: summary.TotalDeductions,
		TotalNet:        summary.TotalNet,
	}, nil
}

// ========== HELPERS ==========

func mapToSettingsResponse(s payroll.PayrollSettings) payroll.PayrollSettingsResponse {
	return payroll.PayrollSettingsResponse{
		ID:                      s.ID,
		CompanyID:               s.CompanyID,
		PFRate:                  s.PFRate,
		ESIRate:                 s.ESIRate,
		PTRate:                  s.PTRate,
		TDSThreshold:            s.TDSThreshold,
		BasicPercent:            s.BasicPercent,
		HRAPercent:              s.HRAPercent,
		SpecialAllowancePercent: s.SpecialAllowancePercent,
	}
}

func mapToCycleResponse(c payroll.PayrollCycle) payroll.CycleResponse {
	return payroll.CycleResponse{
		ID:              c.ID,
		CompanyID:       c.CompanyID,
		PeriodYear:      c.PeriodYear,
		PeriodMonth:     c.PeriodMonth,
		Status:          string(c.Status),
		TotalEmployees:  c.TotalEmployees,
		TotalAmount:     c.TotalAmount,
		Payday:          formatDate(c.Payday),
		SubmittedBy:     c.SubmittedBy,
		SubmittedAt:     formatTime(c.SubmittedAt),
		ApprovedBy:      c.ApprovedBy,
		ApprovedAt:      formatTime(c.ApprovedAt),
		RejectedBy:      c.RejectedBy,
		RejectedAt:      formatTime(c.RejectedAt),
		RejectionReason: c.RejectionReason,
	}
}

func mapToItemResponse(i payroll.PayrollItem) payroll.PayrollItemResponse {
	employeeName := ""
	if i.EmployeeName != nil {
		employeeName = *i.EmployeeName
	}

	return payroll.PayrollItemResponse{
		ID:               i.ID,
		PayrollCycleID:   i.PayrollCycleID,
		EmployeeID:       i.EmployeeID,
		EmployeeName:     employeeName,
		PeriodYear:       i.PeriodYear,
		PeriodMonth:      i.PeriodMonth,
		Basic:            i.Basic,
		HRA:              i.HRA,
		SpecialAllowance: i.SpecialAllowance,
		DA:               i.DA,
		LTA:              i.LTA,
		Bonus:            i.Bonus,
		GrossSalary:      i.GrossSalary,
		PFDeduction:      i.PFDeduction,
		ESIDeduction:     i.ESIDeduction,
		PTDeduction:      i.PTDeduction,
		TDSDeduction:     i.TDSDeduction,
		TotalDeductions:  i.TotalDeductions,
		NetSalary:        i.NetSalary,
		LOPDays:          i.LOPDays,
		PaidDays:         i.PaidDays,
		TotalWorkingDays: i.TotalWorkingDays,
	}
}

func mapToItemResponses(items []payroll.PayrollItem) []payroll.PayrollItemResponse {
	result := make([]payroll.PayrollItemResponse, 0, len(items))
	for _, i := range items {
		result = append(result, mapToItemResponse(i))
	}
	return result
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	str := t.Format(time.RFC3339)
	return &str
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	str := t.Format("2006-01-02")
	return &str
}
