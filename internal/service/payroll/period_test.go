package payroll

import (
	"testing"
	"time"

	"github.com/paywise-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTimeWindow_January(t *testing.T) {
	window, err := ResolveTimeWindow(2025, 1)
	require.NoError(t, err)

	assert.Equal(t, 31, window.TotalWorkingDays)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), window.MonthStart)
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), window.MonthEnd)
}

func TestResolveTimeWindow_February(t *testing.T) {
	nonLeap, err := ResolveTimeWindow(2025, 2)
	require.NoError(t, err)
	assert.Equal(t, 28, nonLeap.TotalWorkingDays)

	leap, err := ResolveTimeWindow(2024, 2)
	require.NoError(t, err)
	assert.Equal(t, 29, leap.TotalWorkingDays)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), leap.MonthEnd)
}

func TestResolveTimeWindow_InvalidPeriod(t *testing.T) {
	cases := []struct {
		name  string
		year  int
		month int
	}{
		{"month zero", 2025, 0},
		{"month thirteen", 2025, 13},
		{"negative month", 2025, -1},
		{"year before 2000", 1999, 6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveTimeWindow(tc.year, tc.month)
			assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
		})
	}
}
