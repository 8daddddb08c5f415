package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// CycleStatus enum
type CycleStatus string

const (
	CycleStatusDraft           CycleStatus = "draft"
	CycleStatusPendingApproval CycleStatus = "pending_approval"
	CycleStatusApproved        CycleStatus = "approved"
	CycleStatusProcessing      CycleStatus = "processing"
	CycleStatusCompleted       CycleStatus = "completed"
	CycleStatusFailed          CycleStatus = "failed"
)

// PayrollCycle - one company's payroll run for a single (year, month).
// At most one cycle exists per (company, year, month); cycles are never deleted.
type PayrollCycle struct {
	ID              string
	CompanyID       string
	PeriodYear      int
	PeriodMonth     int
	Status          CycleStatus
	TotalEmployees  int
	TotalAmount     decimal.Decimal
	Payday          *time.Time
	CreatedBy       *string
	SubmittedBy     *string
	SubmittedAt     *time.Time
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectedBy      *string
	RejectedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PayrollItem - per-employee result of a cycle run. (payroll_cycle_id,
// employee_id) is unique and acts as the idempotency key for reruns.
type PayrollItem struct {
	ID               string
	PayrollCycleID   string
	EmployeeID       string
	CompanyID        string
	Basic            decimal.Decimal
	HRA              decimal.Decimal
	SpecialAllowance decimal.Decimal
	DA               decimal.Decimal
	LTA              decimal.Decimal
	Bonus            decimal.Decimal
	GrossSalary      decimal.Decimal
	PFDeduction      decimal.Decimal
	ESIDeduction     decimal.Decimal
	PTDeduction      decimal.Decimal
	TDSDeduction     decimal.Decimal
	TotalDeductions  decimal.Decimal
	NetSalary        decimal.Decimal
	LOPDays          decimal.Decimal
	PaidDays         decimal.Decimal
	TotalWorkingDays int
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	EmployeeName *string
	PeriodYear   int
	PeriodMonth  int
}

// PayrollSettings - per-company payroll configuration. A single row per
// company; Defaults() is substituted when no row exists.
type PayrollSettings struct {
	ID                      string
	CompanyID               string
	PFRate                  decimal.Decimal
	ESIRate                 decimal.Decimal
	PTRate                  decimal.Decimal
	TDSThreshold            decimal.Decimal
	BasicPercent            decimal.Decimal
	HRAPercent              decimal.Decimal
	SpecialAllowancePercent decimal.Decimal
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// DefaultSettings returns the documented fallback configuration used when a
// company has not stored its own payroll settings.
func DefaultSettings(companyID string) PayrollSettings {
	return PayrollSettings{
		CompanyID:               companyID,
		PFRate:                  decimal.NewFromFloat(12.0),
		ESIRate:                 decimal.NewFromFloat(3.25),
		PTRate:                  decimal.NewFromFloat(200.0),
		TDSThreshold:            decimal.NewFromFloat(250000.0),
		BasicPercent:            decimal.NewFromInt(40),
		HRAPercent:              decimal.NewFromInt(40),
		SpecialAllowancePercent: decimal.NewFromInt(20),
	}
}

// CycleSummary - aggregate view over one period's cycle and items.
type CycleSummary struct {
	PeriodYear      int
	PeriodMonth     int
	Status          CycleStatus
	TotalEmployees  int
	TotalGross      decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNet        decimal.Decimal
}
