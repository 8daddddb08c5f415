package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// CountLossOfPayDays counts attendance rows with is_lop = true and
	// attendance_date within [from, to].
	CountLossOfPayDays(ctx context.Context, employeeID, companyID string, from, to time.Time) (int, error)
}
