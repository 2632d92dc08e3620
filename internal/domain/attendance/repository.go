package attendance

import (
	"context"
	"time"
)

// FullTimeRepository defines data access for full-time attendance records.
// Upsert keeps the one-record-per-(staff, date) invariant.
type FullTimeRepository interface {
	Upsert(ctx context.Context, record FullTimeAttendance) (FullTimeAttendance, error)
	BulkUpsert(ctx context.Context, records []FullTimeAttendance) ([]FullTimeAttendance, error)
	GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (FullTimeAttendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]FullTimeAttendance, error)
	ListByStaffAndMonth(ctx context.Context, staffID string, year, month0 int) ([]FullTimeAttendance, error)
	ListByMonth(ctx context.Context, year, month0 int) ([]FullTimeAttendance, error)
}

// PartTimeRepository defines data access for part-time attendance entries.
type PartTimeRepository interface {
	Create(ctx context.Context, entry PartTimeAttendance) (PartTimeAttendance, error)
	GetByID(ctx context.Context, id string) (PartTimeAttendance, error)
	Update(ctx context.Context, entry PartTimeAttendance) (PartTimeAttendance, error)
	Delete(ctx context.Context, id string) error
	ListByDate(ctx context.Context, date time.Time) ([]PartTimeAttendance, error)
	ListByMonth(ctx context.Context, year, month0 int) ([]PartTimeAttendance, error)
	ListByNameAndMonth(ctx context.Context, staffName string, year, month0 int) ([]PartTimeAttendance, error)
}
