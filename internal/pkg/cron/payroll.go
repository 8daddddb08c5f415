package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/paywise-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paywise-hr/payroll-backend-go/internal/domain/payroll"
)

type PayrollJobs struct {
	payrollSvc   payroll.PayrollService
	employeeRepo employee.EmployeeRepository
}

func NewPayrollJobs(payrollSvc payroll.PayrollService, employeeRepo employee.EmployeeRepository) *PayrollJobs {
	return &PayrollJobs{
		payrollSvc:   payrollSvc,
		employeeRepo: employeeRepo,
	}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("backfill_payroll_history", 6*time.Hour, j.BackfillPayrollHistory)
}

// BackfillPayrollHistory materializes and processes cycles for every past
// month per company, then force-completes elapsed cycles. The per-request
// backfill on payslip reads already self-heals; this job keeps companies
// current even when nobody reads payslips.
func (j *PayrollJobs) BackfillPayrollHistory(ctx context.Context) error {
	companyIDs, err := j.employeeRepo.ListCompanyIDs(ctx)
	if err != nil {
		return err
	}

	for _, companyID := range companyIDs {
		if err := j.payrollSvc.BackfillCompany(ctx, companyID); err != nil {
			// One bad company must not block the rest of the sweep.
			slog.Error("payroll backfill failed", "company_id", companyID, "error", err)
		}
	}

	return nil
}
