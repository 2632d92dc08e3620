package advance

import "context"

// AdvanceRepository defines data access for the advance ledger.
type AdvanceRepository interface {
	Upsert(ctx context.Context, record AdvanceDeduction) (AdvanceDeduction, error)
	GetByStaffAndMonth(ctx context.Context, staffID string, year, month0 int) (AdvanceDeduction, error)
	ListByStaff(ctx context.Context, staffID string) ([]AdvanceDeduction, error)
	ListByMonth(ctx context.Context, year, month0 int) ([]AdvanceDeduction, error)
	GetLatestByStaff(ctx context.Context, staffID string) (AdvanceDeduction, error)
}
