package staff

import "context"

// StaffService defines business logic for the roster and its archive.
type StaffService interface {
	Create(ctx context.Context, req CreateStaffRequest) (StaffResponse, error)
	Get(ctx context.Context, id string) (StaffResponse, error)
	List(ctx context.Context, activeOnly bool) ([]StaffResponse, error)
	Update(ctx context.Context, id string, req UpdateStaffRequest) (StaffResponse, error)

	// Archive moves an active member to the old-staff records, snapshotting
	// the outstanding advance (latest closing balance) for a later rejoin.
	Archive(ctx context.Context, id string, req ArchiveStaffRequest) (OldStaffResponse, error)

	// Rejoin restores an archived record as a fresh active member and
	// re-seeds the current month's advance ledger with the outstanding
	// balance carried at archive time.
	Rejoin(ctx context.Context, oldRecordID string, req RejoinStaffRequest) (StaffResponse, error)

	ListOldRecords(ctx context.Context) ([]OldStaffResponse, error)
}
