package payroll

import (
	"testing"

	"github.com/paywise-hr/payroll-backend-go/internal/domain/compensation"
	"github.com/paywise-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func defaultTestSettings() payroll.PayrollSettings {
	return payroll.DefaultSettings("company-1")
}

func fullMonth(totalWorkingDays int) AttendanceTotals {
	return NewAttendanceTotals(totalWorkingDays, decimal.Zero)
}

// Test proration: 3 LOP days out of 30 scale a 15000 basic to 13500
func TestCalculateSalary_ProratesByPaidDays(t *testing.T) {
	comp := compensation.Structure{
		Basic: decimal.NewFromInt(15000),
	}
	totals := NewAttendanceTotals(30, decimal.NewFromInt(3))

	result := CalculateSalary(comp, totals, defaultTestSettings())

	assert.True(t, result.Basic.Equal(decimal.NewFromInt(13500)), "basic = %s", result.Basic)
	assert.True(t, result.GrossSalary.Equal(decimal.NewFromInt(13500)))
	assert.True(t, result.PFDeduction.Equal(decimal.NewFromInt(1620)))
	assert.True(t, result.ESIDeduction.Equal(decimal.NewFromFloat(101.25)))
	assert.True(t, result.PaidDays.Equal(decimal.NewFromInt(27)))
}

// Test ESI at the wage ceiling: deducted at 21000, dropped entirely at 21001
func TestCalculateSalary_ESIWageCeiling(t *testing.T) {
	totals := fullMonth(30)

	atCeiling := CalculateSalary(compensation.Structure{
		Basic: decimal.NewFromInt(21000),
	}, totals, defaultTestSettings())
	assert.True(t, atCeiling.ESIDeduction.Equal(decimal.NewFromFloat(157.5)), "esi = %s", atCeiling.ESIDeduction)

	aboveCeiling := CalculateSalary(compensation.Structure{
		Basic: decimal.NewFromInt(21001),
	}, totals, defaultTestSettings())
	assert.True(t, aboveCeiling.ESIDeduction.IsZero(), "esi = %s", aboveCeiling.ESIDeduction)
}

// Test TDS above the threshold: 25000/month annualizes to 300000, 50000 over
// the 250000 threshold, 5% spread over 12 months = 208.33
func TestCalculateSalary_TDSAboveThreshold(t *testing.T) {
	comp := compensation.Structure{
		Basic: decimal.NewFromInt(25000),
	}

	result := CalculateSalary(comp, fullMonth(30), defaultTestSettings())

	assert.True(t, result.TDSDeduction.Equal(decimal.NewFromFloat(208.33)), "tds = %s", result.TDSDeduction)
}

func TestCalculateSalary_NoTDSBelowThreshold(t *testing.T) {
	comp := compensation.Structure{
		Basic: decimal.NewFromInt(15000),
	}

	result := CalculateSalary(comp, fullMonth(30), defaultTestSettings())

	assert.True(t, result.TDSDeduction.IsZero())
}

// Test CTC fallback: no monthly components set, so basic/hra/special are
// derived from CTC/12 using the 40/40/20 splits
func TestCalculateSalary_CTCFallback(t *testing.T) {
	comp := compensation.Structure{
		CTC: decimal.NewFromInt(600000),
	}

	result := CalculateSalary(comp, fullMonth(30), defaultTestSettings())

	assert.True(t, result.Basic.Equal(decimal.NewFromInt(20000)), "basic = %s", result.Basic)
	assert.True(t, result.HRA.Equal(decimal.NewFromInt(20000)))
	assert.True(t, result.SpecialAllowance.Equal(decimal.NewFromInt(10000)))
	assert.True(t, result.DA.IsZero())
	assert.True(t, result.LTA.IsZero())
	assert.True(t, result.Bonus.IsZero())
	assert.True(t, result.GrossSalary.Equal(decimal.NewFromInt(50000)))
}

// Monthly components win over CTC when both are present
func TestCalculateSalary_MonthlyComponentsWinOverCTC(t *testing.T) {
	comp := compensation.Structure{
		CTC:   decimal.NewFromInt(600000),
		Basic: decimal.NewFromInt(30000),
	}

	result := CalculateSalary(comp, fullMonth(30), defaultTestSettings())

	assert.True(t, result.Basic.Equal(decimal.NewFromInt(30000)))
	assert.True(t, result.HRA.IsZero())
}

// Gross must equal the sum of rounded components and net the exact remainder
// after rounded deductions
func TestCalculateSalary_Conservation(t *testing.T) {
	comp := compensation.Structure{
		Basic:            decimal.NewFromFloat(23456.78),
		HRA:              decimal.NewFromFloat(11728.39),
		SpecialAllowance: decimal.NewFromFloat(4567.89),
		DA:               decimal.NewFromFloat(1234.56),
		LTA:              decimal.NewFromFloat(789.01),
		Bonus:            decimal.NewFromFloat(2500.55),
	}
	totals := NewAttendanceTotals(31, decimal.NewFromFloat(2.5))

	r := CalculateSalary(comp, totals, defaultTestSettings())

	componentSum := r.Basic.Add(r.HRA).Add(r.SpecialAllowance).Add(r.DA).Add(r.LTA).Add(r.Bonus)
	assert.True(t, r.GrossSalary.Equal(componentSum), "gross %s != component sum %s", r.GrossSalary, componentSum)

	deductionSum := r.PFDeduction.Add(r.ESIDeduction).Add(r.PTDeduction).Add(r.TDSDeduction)
	assert.True(t, r.TotalDeductions.Equal(deductionSum))
	assert.True(t, r.NetSalary.Equal(r.GrossSalary.Sub(r.TotalDeductions)))
}

// More LOP days can never increase net pay
func TestCalculateSalary_NetMonotoneInLOP(t *testing.T) {
	comp := compensation.Structure{
		Basic: decimal.NewFromInt(40000),
		HRA:   decimal.NewFromInt(16000),
	}

	prev := CalculateSalary(comp, NewAttendanceTotals(30, decimal.Zero), defaultTestSettings()).NetSalary
	for lop := 1; lop <= 30; lop++ {
		cur := CalculateSalary(comp, NewAttendanceTotals(30, decimal.NewFromInt(int64(lop))), defaultTestSettings()).NetSalary
		assert.True(t, cur.LessThanOrEqual(prev), "net rose from %s to %s at lop=%d", prev, cur, lop)
		prev = cur
	}
}

// PT is flat: it does not shrink with paid days
func TestCalculateSalary_PTNotProrated(t *testing.T) {
	comp := compensation.Structure{
		Basic: decimal.NewFromInt(20000),
	}

	half := CalculateSalary(comp, NewAttendanceTotals(30, decimal.NewFromInt(15)), defaultTestSettings())

	assert.True(t, half.PTDeduction.Equal(decimal.NewFromInt(200)), "pt = %s", half.PTDeduction)
}

func TestCalculateSalary_ZeroWorkingDays(t *testing.T) {
	comp := compensation.Structure{
		Basic: decimal.NewFromInt(20000),
	}
	totals := AttendanceTotals{TotalWorkingDays: 0, LOPDays: decimal.Zero, PaidDays: decimal.Zero}

	result := CalculateSalary(comp, totals, defaultTestSettings())

	assert.True(t, result.GrossSalary.IsZero())
	assert.True(t, result.PFDeduction.IsZero())
}
