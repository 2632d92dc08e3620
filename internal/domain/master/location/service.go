package location

import "context"

type LocationService interface {
	Create(ctx context.Context, req CreateLocationRequest) (LocationResponse, error)
	List(ctx context.Context, activeOnly bool) ([]LocationResponse, error)
	Update(ctx context.Context, id string, req UpdateLocationRequest) (LocationResponse, error)
	Deactivate(ctx context.Context, id string) error
}
