package compensation

import "errors"

var (
	// ErrCompensationMissing means the employee has no structure effective on
	// or before the requested date. It causes a per-employee skip in payroll
	// runs, never a batch failure.
	ErrCompensationMissing   = errors.New("no compensation structure effective for employee")
	ErrEffectiveFromConflict = errors.New("compensation structure with this effective date already exists")
)
