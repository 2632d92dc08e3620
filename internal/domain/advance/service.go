package advance

import "context"

// AdvanceService defines business logic for the advance ledger.
type AdvanceService interface {
	// Upsert applies admin edits to a staff member's ledger line for a
	// month, recomputing the closing balance. Fields left nil keep their
	// stored values; the opening balance falls back to the previous month's
	// closing balance when the line does not exist yet.
	Upsert(ctx context.Context, staffID string, req UpsertAdvanceRequest) (AdvanceResponse, error)

	// Get returns one staff member's ledger line for a month
	Get(ctx context.Context, staffID string, year, month0 int) (AdvanceResponse, error)

	// ListMonth returns every ledger line for a month
	ListMonth(ctx context.Context, year, month0 int) ([]AdvanceResponse, error)

	// EnsureMonthOpened creates the opening-balance ledger line for every
	// active staff member that has none for the given month, carrying the
	// previous month's closing balance forward. Idempotent: staff already
	// holding a line for the month are untouched. Returns the number of
	// lines created.
	EnsureMonthOpened(ctx context.Context, year, month0 int) (int, error)
}
