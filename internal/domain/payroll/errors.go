package payroll

import "errors"

var (
	ErrPayrollSettingsNotFound = errors.New("payroll settings not found")
	ErrInvalidPeriod           = errors.New("invalid payroll period")
	ErrCycleNotFound           = errors.New("payroll cycle not found")
	ErrCycleAlreadyExists      = errors.New("payroll cycle already exists for this period")
	ErrIllegalTransition       = errors.New("illegal payroll cycle status transition")
	ErrCycleLocked             = errors.New("payroll cycle is locked, items can no longer be modified")
	ErrNoPayrollItems          = errors.New("payroll cycle has no payroll items")
)
