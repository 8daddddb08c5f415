package compensation

import (
	"testing"

	"github.com/paywise-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasMonthlyComponents(t *testing.T) {
	ctcOnly := Structure{CTC: decimal.NewFromInt(600000)}
	assert.False(t, ctcOnly.HasMonthlyComponents())

	withBasic := Structure{CTC: decimal.NewFromInt(600000), Basic: decimal.NewFromInt(20000)}
	assert.True(t, withBasic.HasMonthlyComponents())

	bonusOnly := Structure{Bonus: decimal.NewFromInt(5000)}
	assert.True(t, bonusOnly.HasMonthlyComponents())
}

func TestCreateStructureRequest_Validate(t *testing.T) {
	valid := CreateStructureRequest{
		EffectiveFrom: "2025-01-01",
		CTC:           decimal.NewFromInt(600000),
	}
	assert.NoError(t, valid.Validate())

	invalid := CreateStructureRequest{
		EffectiveFrom: "January 1st",
		Basic:         decimal.NewFromInt(-100),
	}
	err := invalid.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "effective_from")
	assert.Contains(t, m, "basic")
}
