package staff

import "context"

// StaffRepository defines data access for the active roster.
type StaffRepository interface {
	Create(ctx context.Context, s Staff) (Staff, error)
	GetByID(ctx context.Context, id string) (Staff, error)
	List(ctx context.Context, activeOnly bool) ([]Staff, error)
	ListByLocation(ctx context.Context, location Location, activeOnly bool) ([]Staff, error)
	Update(ctx context.Context, s Staff) (Staff, error)
	Deactivate(ctx context.Context, id string) error
}

// OldStaffRepository defines data access for archived roster snapshots.
type OldStaffRepository interface {
	Create(ctx context.Context, r OldStaffRecord) (OldStaffRecord, error)
	GetByID(ctx context.Context, id string) (OldStaffRecord, error)
	List(ctx context.Context) ([]OldStaffRecord, error)
	Delete(ctx context.Context, id string) error
}
