package payroll

import (
	"context"
	"fmt"

	"github.com/paywise-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paywise-hr/payroll-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

// AttendanceTotals is the loss-of-pay summary feeding the salary calculator.
type AttendanceTotals struct {
	LOPDays          decimal.Decimal
	PaidDays         decimal.Decimal
	TotalWorkingDays int
}

// NewAttendanceTotals derives paid days from working days minus LOP days,
// floored at zero.
func NewAttendanceTotals(totalWorkingDays int, lopDays decimal.Decimal) AttendanceTotals {
	paid := decimal.NewFromInt(int64(totalWorkingDays)).Sub(lopDays)
	if paid.IsNegative() {
		paid = decimal.Zero
	}
	return AttendanceTotals{
		LOPDays:          lopDays,
		PaidDays:         paid,
		TotalWorkingDays: totalWorkingDays,
	}
}

// LOPAggregator combines the two loss-of-pay sources for a month: approved
// loss_of_pay leave requests overlapping the window and attendance rows
// flagged is_lop. The sources are summed without deduplication, so a day
// flagged in both counts twice.
type LOPAggregator struct {
	leaveRepo      leave.LeaveRequestRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewLOPAggregator(leaveRepo leave.LeaveRequestRepository, attendanceRepo attendance.AttendanceRepository) *LOPAggregator {
	return &LOPAggregator{
		leaveRepo:      leaveRepo,
		attendanceRepo: attendanceRepo,
	}
}

func (a *LOPAggregator) Totals(ctx context.Context, employeeID, companyID string, window TimeWindow) (AttendanceTotals, error) {
	leaveDays, err := a.leaveRepo.SumLossOfPayDays(ctx, employeeID, companyID, window.MonthStart, window.MonthEnd)
	if err != nil {
		return AttendanceTotals{}, fmt.Errorf("failed to sum leave LOP days: %w", err)
	}

	attendanceDays, err := a.attendanceRepo.CountLossOfPayDays(ctx, employeeID, companyID, window.MonthStart, window.MonthEnd)
	if err != nil {
		return AttendanceTotals{}, fmt.Errorf("failed to count attendance LOP days: %w", err)
	}

	lop := leaveDays.Add(decimal.NewFromInt(int64(attendanceDays)))
	return NewAttendanceTotals(window.TotalWorkingDays, lop), nil
}
