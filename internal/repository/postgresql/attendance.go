package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/paywise-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paywise-hr/payroll-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) CountLossOfPayDays(ctx context.Context, employeeID, companyID string, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendance_records
		WHERE employee_id = $1
		  AND company_id = $2
		  AND is_lop = true
		  AND attendance_date BETWEEN $3 AND $4
	`

	var count int
	err := q.QueryRow(ctx, query, employeeID, companyID, from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count loss of pay attendance: %w", err)
	}

	return count, nil
}
