package salarycategory

import "github.com/shopstaff/staffpay-backend-go/internal/pkg/validator"

type CreateSalaryCategoryRequest struct {
	Name        string `json:"name"`
	BasicSalary int    `json:"basic_salary"`
	Incentive   int    `json:"incentive"`
	HRA         int    `json:"hra"`
}

func (r *CreateSalaryCategoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.BasicSalary < 0 {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if r.Incentive < 0 {
		errs = append(errs, validator.ValidationError{Field: "incentive", Message: "must be non-negative"})
	}
	if r.HRA < 0 {
		errs = append(errs, validator.ValidationError{Field: "hra", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSalaryCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	BasicSalary *int    `json:"basic_salary,omitempty"`
	Incentive   *int    `json:"incentive,omitempty"`
	HRA         *int    `json:"hra,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r *UpdateSalaryCategoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.BasicSalary != nil && *r.BasicSalary < 0 {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if r.Incentive != nil && *r.Incentive < 0 {
		errs = append(errs, validator.ValidationError{Field: "incentive", Message: "must be non-negative"})
	}
	if r.HRA != nil && *r.HRA < 0 {
		errs = append(errs, validator.ValidationError{Field: "hra", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryCategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BasicSalary int    `json:"basic_salary"`
	Incentive   int    `json:"incentive"`
	HRA         int    `json:"hra"`
	TotalSalary int    `json:"total_salary"`
	IsActive    bool   `json:"is_active"`
}

func ToSalaryCategoryResponse(c SalaryCategory) SalaryCategoryResponse {
	return SalaryCategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		BasicSalary: c.BasicSalary,
		Incentive:   c.Incentive,
		HRA:         c.HRA,
		TotalSalary: c.TotalSalary,
		IsActive:    c.IsActive,
	}
}
