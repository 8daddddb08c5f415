package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/paywise-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paywise-hr/payroll-backend-go/internal/domain/payroll"
)

// BackfillCompany walks every calendar month from the company's earliest
// employee join date up to (but excluding) the current month, makes sure a
// cycle row exists for each, and processes any eligible employee still
// missing a payroll item. Employees that already have an item are left
// untouched, so the walk is cheap once history is materialized. Locked
// cycles are skipped entirely. Finishes with the age-out sweep.
//
// This runs synchronously inside payslip-history reads; the O(months x
// employees) cost is acceptable only for small tenants.
func (s *PayrollServiceImpl) BackfillCompany(ctx context.Context, companyID string) error {
	earliest, ok, err := s.employeeRepo.EarliestJoinDate(ctx, companyID)
	if err != nil {
		return fmt.Errorf("failed to get earliest join date: %w", err)
	}
	if !ok {
		return nil // no employees, nothing to backfill
	}

	settings, err := s.loadSettings(ctx, companyID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	for cursor := time.Date(earliest.Year(), earliest.Month(), 1, 0, 0, 0, 0, time.UTC); cursor.Before(currentMonth); cursor = cursor.AddDate(0, 1, 0) {
		if err := s.backfillMonth(ctx, companyID, settings, cursor.Year(), int(cursor.Month())); err != nil {
			return err
		}
	}

	if _, err := s.payrollRepo.CompleteElapsedCycles(ctx, companyID, now.Year(), int(now.Month())); err != nil {
		return fmt.Errorf("failed to complete elapsed cycles: %w", err)
	}

	return nil
}

func (s *PayrollServiceImpl) backfillMonth(ctx context.Context, companyID string, settings payroll.PayrollSettings, year, month int) error {
	window, err := ResolveTimeWindow(year, month)
	if err != nil {
		return err
	}

	cycle, err := s.getOrCreateCycle(ctx, companyID, year, month)
	if err != nil {
		return err
	}
	if cycle.Status.IsLocked() {
		return nil
	}

	missing, err := s.eligibleWithoutItems(ctx, cycle, window.MonthEnd)
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		return nil
	}

	processed, skipped := s.processEmployees(ctx, cycle, window, settings, missing)
	slog.Info("backfilled payroll cycle",
		"company_id", companyID, "period_year", year, "period_month", month,
		"processed", processed, "skipped", skipped)

	if _, err := s.payrollRepo.RefreshCycleTotals(ctx, companyID, cycle.ID); err != nil {
		return fmt.Errorf("failed to refresh cycle totals: %w", err)
	}

	return nil
}

// getOrCreateCycle lazily materializes the cycle row for a period. A lost
// creation race falls back to reading the winner's row.
func (s *PayrollServiceImpl) getOrCreateCycle(ctx context.Context, companyID string, year, month int) (payroll.PayrollCycle, error) {
	cycle, err := s.payrollRepo.GetCycleByPeriod(ctx, companyID, year, month)
	if err == nil {
		return cycle, nil
	}
	if !errors.Is(err, payroll.ErrCycleNotFound) {
		return payroll.PayrollCycle{}, err
	}

	created, err := s.payrollRepo.CreateCycle(ctx, payroll.PayrollCycle{
		CompanyID:   companyID,
		PeriodYear:  year,
		PeriodMonth: month,
		Status:      payroll.CycleStatusDraft,
	})
	if err == nil {
		return created, nil
	}
	if errors.Is(err, payroll.ErrCycleAlreadyExists) {
		return s.payrollRepo.GetCycleByPeriod(ctx, companyID, year, month)
	}
	return payroll.PayrollCycle{}, err
}

// eligibleWithoutItems filters the month's eligible employees down to those
// without a persisted payroll item for the cycle.
func (s *PayrollServiceImpl) eligibleWithoutItems(ctx context.Context, cycle payroll.PayrollCycle, monthEnd time.Time) ([]employee.Employee, error) {
	eligible, err := s.employeeRepo.GetEligible(ctx, cycle.CompanyID, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get eligible employees: %w", err)
	}

	existing, err := s.payrollRepo.ListEmployeeIDsWithItems(ctx, cycle.ID, cycle.CompanyID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(existing))
	for _, id := range existing {
		seen[id] = true
	}

	var missing []employee.Employee
	for _, emp := range eligible {
		if !seen[emp.ID] {
			missing = append(missing, emp)
		}
	}
	return missing, nil
}
