package payroll

import "errors"

// Payroll domain errors. The calculator is pure arithmetic; these guard the
// contract rather than recover from I/O.
var (
	ErrInvalidMonth          = errors.New("month must be between 0 and 11")
	ErrNegativeSalary        = errors.New("salary components must be non-negative")
	ErrPartTimeStaffNotFound = errors.New("no part-time attendance found for this name and month")
)
