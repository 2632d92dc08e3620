package master

import (
	"context"
	"fmt"

	"github.com/shopstaff/staffpay-backend-go/internal/domain/master/location"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/master/salarycategory"
)

type LocationServiceImpl struct {
	repo location.LocationRepository
}

func NewLocationService(repo location.LocationRepository) location.LocationService {
	return &LocationServiceImpl{repo: repo}
}

func (s *LocationServiceImpl) Create(ctx context.Context, req location.CreateLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Name
	}

	created, err := s.repo.Create(ctx, location.Location{
		Name:        req.Name,
		DisplayName: displayName,
		IsActive:    true,
	})
	if err != nil {
		return location.LocationResponse{}, fmt.Errorf("failed to create location: %w", err)
	}
	return location.ToLocationResponse(created), nil
}

func (s *LocationServiceImpl) List(ctx context.Context, activeOnly bool) ([]location.LocationResponse, error) {
	locations, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	out := make([]location.LocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, location.ToLocationResponse(l))
	}
	return out, nil
}

func (s *LocationServiceImpl) Update(ctx context.Context, id string, req location.UpdateLocationRequest) (location.LocationResponse, error) {
	locations, err := s.repo.List(ctx, false)
	if err != nil {
		return location.LocationResponse{}, fmt.Errorf("failed to list locations: %w", err)
	}

	var target *location.Location
	for i := range locations {
		if locations[i].ID == id {
			target = &locations[i]
			break
		}
	}
	if target == nil {
		return location.LocationResponse{}, location.ErrLocationNotFound
	}

	if req.DisplayName != nil {
		target.DisplayName = *req.DisplayName
	}
	if req.IsActive != nil {
		target.IsActive = *req.IsActive
	}

	updated, err := s.repo.Update(ctx, *target)
	if err != nil {
		return location.LocationResponse{}, fmt.Errorf("failed to update location: %w", err)
	}
	return location.ToLocationResponse(updated), nil
}

func (s *LocationServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}

type SalaryCategoryServiceImpl struct {
	repo salarycategory.SalaryCategoryRepository
}

func NewSalaryCategoryService(repo salarycategory.SalaryCategoryRepository) salarycategory.SalaryCategoryService {
	return &SalaryCategoryServiceImpl{repo: repo}
}

func (s *SalaryCategoryServiceImpl) Create(ctx context.Context, req salarycategory.CreateSalaryCategoryRequest) (salarycategory.SalaryCategoryResponse, error) {
	if err := req.Validate(); err != nil {
		return salarycategory.SalaryCategoryResponse{}, err
	}

	category := salarycategory.SalaryCategory{
		Name:        req.Name,
		BasicSalary: req.BasicSalary,
		Incentive:   req.Incentive,
		HRA:         req.HRA,
		IsActive:    true,
	}
	category.RecomputeTotal()

	created, err := s.repo.Create(ctx, category)
	if err != nil {
		return salarycategory.SalaryCategoryResponse{}, fmt.Errorf("failed to create salary category: %w", err)
	}
	return salarycategory.ToSalaryCategoryResponse(created), nil
}

func (s *SalaryCategoryServiceImpl) List(ctx context.Context, activeOnly bool) ([]salarycategory.SalaryCategoryResponse, error) {
	categories, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary categories: %w", err)
	}

	out := make([]salarycategory.SalaryCategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, salarycategory.ToSalaryCategoryResponse(c))
	}
	return out, nil
}

func (s *SalaryCategoryServiceImpl) Update(ctx context.Context, id string, req salarycategory.UpdateSalaryCategoryRequest) (salarycategory.SalaryCategoryResponse, error) {
	if err := req.Validate(); err != nil {
		return salarycategory.SalaryCategoryResponse{}, err
	}

	categories, err := s.repo.List(ctx, false)
	if err != nil {
		return salarycategory.SalaryCategoryResponse{}, fmt.Errorf("failed to list salary categories: %w", err)
	}

	var target *salarycategory.SalaryCategory
	for i := range categories {
		if categories[i].ID == id {
			target = &categories[i]
			break
		}
	}
	if target == nil {
		return salarycategory.SalaryCategoryResponse{}, salarycategory.ErrCategoryNotFound
	}

	if req.Name != nil {
		target.Name = *req.Name
	}
	if req.BasicSalary != nil {
		target.BasicSalary = *req.BasicSalary
	}
	if req.Incentive != nil {
		target.Incentive = *req.Incentive
	}
	if req.HRA != nil {
		target.HRA = *req.HRA
	}
	if req.IsActive != nil {
		target.IsActive = *req.IsActive
	}
	target.RecomputeTotal()

	updated, err := s.repo.Update(ctx, *target)
	if err != nil {
		return salarycategory.SalaryCategoryResponse{}, fmt.Errorf("failed to update salary category: %w", err)
	}
	return salarycategory.ToSalaryCategoryResponse(updated), nil
}

func (s *SalaryCategoryServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}
