package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrStaffNotRostered = errors.New("staff member is not on the full-time roster")
)
