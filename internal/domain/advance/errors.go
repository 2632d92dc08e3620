package advance

import "errors"

// Advance ledger domain errors
var (
	ErrAdvanceNotFound = errors.New("advance record not found")
	ErrInvalidMonth    = errors.New("month must be between 0 and 11")
)
