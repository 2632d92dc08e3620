package staff

import "errors"

// Staff domain errors
var (
	ErrStaffNotFound     = errors.New("staff member not found")
	ErrStaffInactive     = errors.New("staff member is not active")
	ErrOldRecordNotFound = errors.New("archived staff record not found")
	ErrAlreadyArchived   = errors.New("staff member is already archived")
	ErrInvalidLocation   = errors.New("unknown shop location")
)
