package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/paywise-hr/payroll-backend-go/internal/domain/leave"
	"github.com/paywise-hr/payroll-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

func (r *leaveRequestRepository) SumLossOfPayDays(ctx context.Context, employeeID, companyID string, from, to time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	// Overlap test: a request counts when its date range intersects the
	// window at all, not only when fully contained.
	query := `
		SELECT COALESCE(SUM(days), 0)
		FROM leave_requests
		WHERE employee_id = $1
		  AND company_id = $2
		  AND leave_type = $3
		  AND status = $4
		  AND start_date <= $5
		  AND end_date >= $6
	`

	var total decimal.Decimal
	err := q.QueryRow(ctx, query,
		employeeID, companyID, leave.LeaveTypeLossOfPay, leave.LeaveRequestStatusApproved, to, from,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum loss of pay days: %w", err)
	}

	return total, nil
}
