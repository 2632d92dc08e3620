package dashboard

import "context"

// DashboardService produces read-side attendance rollups for display.
type DashboardService interface {
	// LocationSummary rolls up one location's attendance for a date
	LocationSummary(ctx context.Context, date string, location string) (LocationAttendanceSummary, error)

	// AllLocationSummaries rolls up every active location for a date
	AllLocationSummaries(ctx context.Context, date string) ([]LocationAttendanceSummary, error)
}
