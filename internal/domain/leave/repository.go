package leave

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type LeaveRequestRepository interface {
	// SumLossOfPayDays sums the days of approved loss_of_pay requests whose
	// [start_date, end_date] range intersects [from, to]. Requests that
	// start in the window, end in it, or span across it all count.
	SumLossOfPayDays(ctx context.Context, employeeID, companyID string, from, to time.Time) (decimal.Decimal, error)
}
