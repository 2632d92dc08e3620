package salarycategory

import "context"

type SalaryCategoryRepository interface {
	Create(ctx context.Context, c SalaryCategory) (SalaryCategory, error)
	List(ctx context.Context, activeOnly bool) ([]SalaryCategory, error)
	Update(ctx context.Context, c SalaryCategory) (SalaryCategory, error)
	Deactivate(ctx context.Context, id string) error
}
