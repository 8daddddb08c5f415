package employee

import (
	"testing"
	"time"

	"github.com/paywise-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligibleFor(t *testing.T) {
	monthEnd := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	joinedBefore := Employee{Status: StatusActive, DateOfJoining: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)}
	assert.True(t, joinedBefore.EligibleFor(monthEnd))

	joinedOnMonthEnd := Employee{Status: StatusActive, DateOfJoining: monthEnd}
	assert.True(t, joinedOnMonthEnd.EligibleFor(monthEnd))

	joinedAfter := Employee{Status: StatusActive, DateOfJoining: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)}
	assert.False(t, joinedAfter.EligibleFor(monthEnd))

	terminated := Employee{Status: StatusTerminated, DateOfJoining: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	assert.False(t, terminated.EligibleFor(monthEnd))

	onLeave := Employee{Status: StatusOnLeave, DateOfJoining: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	assert.False(t, onLeave.EligibleFor(monthEnd))
}

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	valid := CreateEmployeeRequest{
		FullName:      "Asha Rao",
		Email:         "asha@example.com",
		DateOfJoining: "2025-01-15",
	}
	assert.NoError(t, valid.Validate())

	invalid := CreateEmployeeRequest{
		FullName:      "",
		Email:         "not-an-email",
		Status:        "fired",
		DateOfJoining: "15/01/2025",
	}
	err := invalid.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "full_name")
	assert.Contains(t, m, "email")
	assert.Contains(t, m, "status")
	assert.Contains(t, m, "date_of_joining")
}
