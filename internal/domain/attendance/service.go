package attendance

import "context"

// AttendanceService defines business logic for marking attendance.
type AttendanceService interface {
	// Mark upserts a full-time attendance record for one staff member and
	// date. Marking the same day twice replaces the earlier status.
	Mark(ctx context.Context, req MarkAttendanceRequest) (FullTimeAttendanceResponse, error)

	// BulkMark upserts full-time attendance for a whole date in one call
	BulkMark(ctx context.Context, req BulkMarkAttendanceRequest) ([]FullTimeAttendanceResponse, error)

	// GetDay returns all attendance (full-time and part-time) for a date
	GetDay(ctx context.Context, date string) (DayAttendanceResponse, error)

	// AddPartTimeEntry records a part-time worker as present for a date.
	// When no salary is supplied the daily default from the rate table is
	// used (Mon-Sat weekday rate, Sunday rate on Sundays).
	AddPartTimeEntry(ctx context.Context, req AddPartTimeEntryRequest) (PartTimeAttendanceResponse, error)

	// UpdatePartTimeSalary overrides the per-entry salary
	UpdatePartTimeSalary(ctx context.Context, id string, req UpdatePartTimeSalaryRequest) (PartTimeAttendanceResponse, error)

	// DeletePartTimeEntry removes an erroneous part-time entry
	DeletePartTimeEntry(ctx context.Context, id string) error
}
