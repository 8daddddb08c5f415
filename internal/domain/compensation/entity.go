package compensation

import (
	"time"

	"github.com/shopspring/decimal"
)

// Structure is an effective-dated compensation record. Rows are append-only:
// a change in pay is a new row with a later effective_from, never an edit.
// (employee_id, effective_from) is unique.
type Structure struct {
	ID               string
	EmployeeID       string
	CompanyID        string
	EffectiveFrom    time.Time
	CTC              decimal.Decimal // annual
	Basic            decimal.Decimal // monthly components
	HRA              decimal.Decimal
	SpecialAllowance decimal.Decimal
	DA               decimal.Decimal
	LTA              decimal.Decimal
	Bonus            decimal.Decimal
	CreatedAt        time.Time
}

// HasMonthlyComponents reports whether any monthly component is set. When
// none are and CTC is positive, the salary calculator derives basic/hra/
// special allowance from CTC using the settings percentage splits.
func (s Structure) HasMonthlyComponents() bool {
	for _, c := range []decimal.Decimal{s.Basic, s.HRA, s.SpecialAllowance, s.DA, s.LTA, s.Bonus} {
		if !c.IsZero() {
			return true
		}
	}
	return false
}
