package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLeaveRepo struct {
	days decimal.Decimal
	err  error
}

func (s *stubLeaveRepo) SumLossOfPayDays(ctx context.Context, employeeID, companyID string, from, to time.Time) (decimal.Decimal, error) {
	return s.days, s.err
}

type stubAttendanceRepo struct {
	days int
	err  error
}

func (s *stubAttendanceRepo) CountLossOfPayDays(ctx context.Context, employeeID, companyID string, from, to time.Time) (int, error) {
	return s.days, s.err
}

func TestNewAttendanceTotals_FloorsPaidDaysAtZero(t *testing.T) {
	totals := NewAttendanceTotals(30, decimal.NewFromInt(35))

	assert.True(t, totals.PaidDays.IsZero())
	assert.True(t, totals.LOPDays.Equal(decimal.NewFromInt(35)))
}

func TestNewAttendanceTotals_HalfDays(t *testing.T) {
	totals := NewAttendanceTotals(30, decimal.NewFromFloat(2.5))

	assert.True(t, totals.PaidDays.Equal(decimal.NewFromFloat(27.5)))
}

// Both sources add up; a day flagged in both counts twice
func TestLOPAggregator_SumsSourcesWithoutDeduplication(t *testing.T) {
	agg := NewLOPAggregator(
		&stubLeaveRepo{days: decimal.NewFromFloat(2.5)},
		&stubAttendanceRepo{days: 3},
	)
	window, err := ResolveTimeWindow(2025, 6)
	require.NoError(t, err)

	totals, err := agg.Totals(context.Background(), "emp-1", "company-1", window)
	require.NoError(t, err)

	assert.True(t, totals.LOPDays.Equal(decimal.NewFromFloat(5.5)), "lop = %s", totals.LOPDays)
	assert.True(t, totals.PaidDays.Equal(decimal.NewFromFloat(24.5)))
	assert.Equal(t, 30, totals.TotalWorkingDays)
}

func TestLOPAggregator_NoLOP(t *testing.T) {
	agg := NewLOPAggregator(
		&stubLeaveRepo{days: decimal.Zero},
		&stubAttendanceRepo{days: 0},
	)
	window, err := ResolveTimeWindow(2025, 2)
	require.NoError(t, err)

	totals, err := agg.Totals(context.Background(), "emp-1", "company-1", window)
	require.NoError(t, err)

	assert.True(t, totals.LOPDays.IsZero())
	assert.True(t, totals.PaidDays.Equal(decimal.NewFromInt(28)))
}
