package payroll

import (
	"github.com/paywise-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== SETTINGS DTOs ==========

type PayrollSettingsResponse struct {
	ID                      string          `json:"id,omitempty"`
	CompanyID               string          `json:"company_id"`
	PFRate                  decimal.Decimal `json:"pf_rate"`
	ESIRate                 decimal.Decimal `json:"esi_rate"`
	PTRate                  decimal.Decimal `json:"pt_rate"`
	TDSThreshold            decimal.Decimal `json:"tds_threshold"`
	BasicPercent            decimal.Decimal `json:"basic_percent"`
	HRAPercent              decimal.Decimal `json:"hra_percent"`
	SpecialAllowancePercent decimal.Decimal `json:"special_allowance_percent"`
}

type UpdatePayrollSettingsRequest struct {
	PFRate                  *decimal.Decimal `json:"pf_rate,omitempty"`
	ESIRate                 *decimal.Decimal `json:"esi_rate,omitempty"`
	PTRate                  *decimal.Decimal `json:"pt_rate,omitempty"`
	TDSThreshold            *decimal.Decimal `json:"tds_threshold,omitempty"`
	BasicPercent            *decimal.Decimal `json:"basic_percent,omitempty"`
	HRAPercent              *decimal.Decimal `json:"hra_percent,omitempty"`
	SpecialAllowancePercent *decimal.Decimal `json:"special_allowance_percent,omitempty"`
}

func (r *UpdatePayrollSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	rates := map[string]*decimal.Decimal{
		"pf_rate":                   r.PFRate,
		"esi_rate":                  r.ESIRate,
		"pt_rate":                   r.PTRate,
		"tds_threshold":             r.TDSThreshold,
		"basic_percent":             r.BasicPercent,
		"hra_percent":               r.HRAPercent,
		"special_allowance_percent": r.SpecialAllowancePercent,
	}
	for field, v := range rates {
		if v != nil && v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== CYCLE DTOs ==========

type CreateCycleRequest struct {
	PeriodYear  int     `json:"period_year"`
	PeriodMonth int     `json:"period_month"`
	Payday      *string `json:"payday,omitempty"` // "YYYY-MM-DD"
}

func (r *CreateCycleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if r.PeriodYear < 2000 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be 2000 or later"})
	}
	if r.Payday != nil {
		if _, ok := validator.IsValidDate(*r.Payday); !ok {
			errs = append(errs, validator.ValidationError{Field: "payday", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectCycleRequest struct {
	Reason string `json:"reason"`
}

func (r *RejectCycleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CycleResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	PeriodYear      int             `json:"period_year"`
	PeriodMonth     int             `json:"period_month"`
	Status          string          `json:"status"`
	TotalEmployees  int             `json:"total_employees"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Payday          *string         `json:"payday,omitempty"`
	SubmittedBy     *string         `json:"submitted_by,omitempty"`
	SubmittedAt     *string         `json:"submitted_at,omitempty"`
	ApprovedBy      *string         `json:"approved_by,omitempty"`
	ApprovedAt      *string         `json:"approved_at,omitempty"`
	RejectedBy      *string         `json:"rejected_by,omitempty"`
	RejectedAt      *string         `json:"rejected_at,omitempty"`
	RejectionReason *string         `json:"rejection_reason,omitempty"`
}

type CycleFilter struct {
	PeriodYear  *int    `json:"period_year,omitempty"`
	PeriodMonth *int    `json:"period_month,omitempty"`
	Status      *string `json:"status,omitempty"`
	Page        int     `json:"page"`
	Limit       int     `json:"limit"`
}

type ListCycleResponse struct {
	Data       []CycleResponse `json:"data"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}

// ========== ITEM DTOs ==========

type PayrollItemResponse struct {
	ID               string          `json:"id"`
	PayrollCycleID   string          `json:"payroll_cycle_id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name,omitempty"`
	PeriodYear       int             `json:"period_year,omitempty"`
	PeriodMonth      int             `json:"period_month,omitempty"`
	Basic            decimal.Decimal `json:"basic"`
	HRA              decimal.Decimal `json:"hra"`
	SpecialAllowance decimal.Decimal `json:"special_allowance"`
	DA               decimal.Decimal `json:"da"`
	LTA              decimal.Decimal `json:"lta"`
	Bonus            decimal.Decimal `json:"bonus"`
	GrossSalary      decimal.Decimal `json:"gross_salary"`
	PFDeduction      decimal.Decimal `json:"pf_deduction"`
	ESIDeduction     decimal.Decimal `json:"esi_deduction"`
	PTDeduction      decimal.Decimal `json:"pt_deduction"`
	TDSDeduction     decimal.Decimal `json:"tds_deduction"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	NetSalary        decimal.Decimal `json:"net_salary"`
	LOPDays          decimal.Decimal `json:"lop_days"`
	PaidDays         decimal.Decimal `json:"paid_days"`
	TotalWorkingDays int             `json:"total_working_days"`
}

type GenerateResult struct {
	CycleID        string          `json:"cycle_id"`
	Processed      int             `json:"processed"`
	Skipped        int             `json:"skipped"`
	TotalEmployees int             `json:"total_employees"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

type CycleSummaryResponse struct {
	PeriodYear      int             `json:"period_year"`
	PeriodMonth     int             `json:"period_month"`
	Status          string          `json:"status"`
	TotalEmployees  int             `json:"total_employees"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNet        decimal.Decimal `json:"total_net"`
}
