package compensation

import (
	"github.com/paywise-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateStructureRequest struct {
	EmployeeID       string          `json:"-"`
	EffectiveFrom    string          `json:"effective_from"` // "YYYY-MM-DD"
	CTC              decimal.Decimal `json:"ctc"`
	Basic            decimal.Decimal `json:"basic"`
	HRA              decimal.Decimal `json:"hra"`
	SpecialAllowance decimal.Decimal `json:"special_allowance"`
	DA               decimal.Decimal `json:"da"`
	LTA              decimal.Decimal `json:"lta"`
	Bonus            decimal.Decimal `json:"bonus"`
}

func (r *CreateStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	amounts := map[string]decimal.Decimal{
		"ctc":               r.CTC,
		"basic":             r.Basic,
		"hra":               r.HRA,
		"special_allowance": r.SpecialAllowance,
		"da":                r.DA,
		"lta":               r.LTA,
		"bonus":             r.Bonus,
	}
	for field, v := range amounts {
		if v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StructureResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EffectiveFrom    string          `json:"effective_from"`
	CTC              decimal.Decimal `json:"ctc"`
	Basic            decimal.Decimal `json:"basic"`
	HRA              decimal.Decimal `json:"hra"`
	SpecialAllowance decimal.Decimal `json:"special_allowance"`
	DA               decimal.Decimal `json:"da"`
	LTA              decimal.Decimal `json:"lta"`
	Bonus            decimal.Decimal `json:"bonus"`
}
