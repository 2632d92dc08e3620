package salarycategory

import "context"

type SalaryCategoryService interface {
	Create(ctx context.Context, req CreateSalaryCategoryRequest) (SalaryCategoryResponse, error)
	List(ctx context.Context, activeOnly bool) ([]SalaryCategoryResponse, error)
	Update(ctx context.Context, id string, req UpdateSalaryCategoryRequest) (SalaryCategoryResponse, error)
	Deactivate(ctx context.Context, id string) error
}
