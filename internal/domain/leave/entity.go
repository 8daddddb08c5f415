package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusWaitingApproval LeaveRequestStatus = "waiting_approval"
	LeaveRequestStatusApproved        LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected        LeaveRequestStatus = "rejected"
	LeaveRequestStatusCancelled       LeaveRequestStatus = "cancelled"
)

// LeaveTypeLossOfPay is the only leave type that reduces salary. Other types
// exist in the leave module but are invisible to payroll.
const LeaveTypeLossOfPay = "loss_of_pay"

type LeaveRequest struct {
	ID         string
	EmployeeID string
	CompanyID  string
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
	Status     LeaveRequestStatus
	Days       decimal.Decimal // half days allowed
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
