package payroll

import (
	"time"

	"github.com/paywise-hr/payroll-backend-go/internal/domain/payroll"
)

// TimeWindow describes the calendar boundaries of one payroll month. Every
// calendar day of the month counts as a working day in this model; there is
// no weekend or holiday exclusion.
type TimeWindow struct {
	Year             int
	Month            int
	TotalWorkingDays int
	MonthStart       time.Time
	MonthEnd         time.Time
}

// ResolveTimeWindow computes the calendar window for (year, month). The only
// failure mode is an invalid period.
func ResolveTimeWindow(year, month int) (TimeWindow, error) {
	if month < 1 || month > 12 || year < 2000 {
		return TimeWindow{}, payroll.ErrInvalidPeriod
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	return TimeWindow{
		Year:             year,
		Month:            month,
		TotalWorkingDays: end.Day(),
		MonthStart:       start,
		MonthEnd:         end,
	}, nil
}
