package location

import "time"

// Location is a master-data row for a shop location. The three defaults
// (Big Shop, Small Shop, Godown) are seeded at install; deactivating one
// hides it from pickers without touching historical records.
type Location struct {
	ID          string
	Name        string
	DisplayName string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
