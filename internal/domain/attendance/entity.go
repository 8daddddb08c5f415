package attendance

import "time"

// AttendanceRecord is one row per employee per date. Rows flagged is_lop
// each add one loss-of-pay day on top of any LOP leave requests; the two
// sources are summed without deduplication.
type AttendanceRecord struct {
	ID             string
	EmployeeID     string
	CompanyID      string
	AttendanceDate time.Time
	Status         string
	IsLOP          bool
	CreatedAt      time.Time
}
