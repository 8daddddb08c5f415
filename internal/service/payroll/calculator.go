package payroll

import (
	"github.com/paywise-hr/payroll-backend-go/internal/domain/compensation"
	"github.com/paywise-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)

	// Employee-side ESI: 0.75% of adjusted gross, only at or below the wage
	// ceiling. settings.esi_rate does not feed this formula.
	esiWageCeiling  = decimal.NewFromInt(21000)
	esiEmployeeRate = decimal.NewFromFloat(0.75)

	// TDS: 5% of the annualized amount above the threshold, spread over 12
	// months.
	tdsSlabRate = decimal.NewFromInt(5)
)

// SalaryBreakdown is the full line-item result for one employee and month.
// All amounts are rounded to 2 decimal places; GrossSalary is the exact sum
// of the rounded components and NetSalary the exact remainder after the
// rounded deductions.
type SalaryBreakdown struct {
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
}

// CalculateSalary computes one employee's pay for a month. Pure function: no
// I/O, deterministic for identical inputs.
//
// When every monthly component is zero but an annual CTC is set, basic, hra
// and special allowance are derived from CTC/12 using the settings percentage
// splits, leaving da/lta/bonus at zero. All earning components are then
// scaled by paidDays/totalWorkingDays.
func CalculateSalary(comp compensation.Structure, totals AttendanceTotals, settings payroll.PayrollSettings) SalaryBreakdown {
	basic := comp.Basic
	hra := comp.HRA
	special := comp.SpecialAllowance
	da := comp.DA
	lta := comp.LTA
	bonus := comp.Bonus

	if !comp.HasMonthlyComponents() && comp.CTC.IsPositive() {
		monthly := comp.CTC.Div(twelve)
		basic = monthly.Mul(settings.BasicPercent).Div(hundred)
		hra = monthly.Mul(settings.HRAPercent).Div(hundred)
		special = monthly.Mul(settings.SpecialAllowancePercent).Div(hundred)
		da = decimal.Zero
		lta = decimal.Zero
		bonus = decimal.Zero
	}

	ratio := decimal.Zero
	if totals.TotalWorkingDays > 0 {
		ratio = totals.PaidDays.Div(decimal.NewFromInt(int64(totals.TotalWorkingDays)))
	}

	adjBasic := basic.Mul(ratio).Round(2)
	adjHRA := hra.Mul(ratio).Round(2)
	adjSpecial := special.Mul(ratio).Round(2)
	adjDA := da.Mul(ratio).Round(2)
	adjLTA := lta.Mul(ratio).Round(2)
	adjBonus := bonus.Mul(ratio).Round(2)

	gross := adjBasic.Add(adjHRA).Add(adjSpecial).Add(adjDA).Add(adjLTA).Add(adjBonus)

	pf := adjBasic.Mul(settings.PFRate).Div(hundred).Round(2)

	esi := decimal.Zero
	if gross.LessThanOrEqual(esiWageCeiling) {
		esi = gross.Mul(esiEmployeeRate).Div(hundred).Round(2)
	}

	pt := settings.PTRate.Round(2) // flat, not prorated

	tds := decimal.Zero
	annualized := gross.Mul(twelve)
	if annualized.GreaterThan(settings.TDSThreshold) {
		tds = annualized.Sub(settings.TDSThreshold).Mul(tdsSlabRate).Div(hundred).Div(twelve).Round(2)
	}

	deductions := pf.Add(esi).Add(pt).Add(tds)

	return SalaryBreakdown{
		Basic:            adjBasic,
		HRA:              adjHRA,
		SpecialAllowance: adjSpecial,
		DA:               adjDA,
		LTA:              adjLTA,
		Bonus:            adjBonus,
		GrossSalary:      gross,
		PFDeduction:      pf,
		ESIDeduction:     esi,
		PTDeduction:      pt,
		TDSDeduction:     tds,
		TotalDeductions:  deductions,
		NetSalary:        gross.Sub(deductions),
		LOPDays:          totals.LOPDays,
		PaidDays:         totals.PaidDays,
		TotalWorkingDays: totals.TotalWorkingDays,
	}
}
