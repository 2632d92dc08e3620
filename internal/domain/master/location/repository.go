package location

import "context"

type LocationRepository interface {
	Create(ctx context.Context, l Location) (Location, error)
	List(ctx context.Context, activeOnly bool) ([]Location, error)
	Update(ctx context.Context, l Location) (Location, error)
	Deactivate(ctx context.Context, id string) error
}
