package advance

import (
	"github.com/shopstaff/staffpay-backend-go/internal/pkg/validator"
)

type UpsertAdvanceRequest struct {
	Month          int    `json:"month"`
	Year           int    `json:"year"`
	OldAdvance     *int   `json:"old_advance,omitempty"`
	CurrentAdvance *int   `json:"current_advance,omitempty"`
	Deduction      *int   `json:"deduction,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

func (r *UpsertAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 0 || r.Month > 11 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 0 and 11"})
	}
	if r.Year < 2000 || r.Year > 2200 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}
	if r.OldAdvance != nil && *r.OldAdvance < 0 {
		errs = append(errs, validator.ValidationError{Field: "old_advance", Message: "must be non-negative"})
	}
	if r.CurrentAdvance != nil && *r.CurrentAdvance < 0 {
		errs = append(errs, validator.ValidationError{Field: "current_advance", Message: "must be non-negative"})
	}
	if r.Deduction != nil && *r.Deduction < 0 {
		errs = append(errs, validator.ValidationError{Field: "deduction", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OpenMonthRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *OpenMonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 0 || r.Month > 11 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 0 and 11"})
	}
	if r.Year < 2000 || r.Year > 2200 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdvanceResponse struct {
	ID             string `json:"id"`
	StaffID        string `json:"staff_id"`
	Month          int    `json:"month"`
	Year           int    `json:"year"`
	OldAdvance     int    `json:"old_advance"`
	CurrentAdvance int    `json:"current_advance"`
	Deduction      int    `json:"deduction"`
	NewAdvance     int    `json:"new_advance"`
	Notes          string `json:"notes,omitempty"`
}

func ToAdvanceResponse(a AdvanceDeduction) AdvanceResponse {
	return AdvanceResponse{
		ID:             a.ID,
		StaffID:        a.StaffID,
		Month:          a.Month,
		Year:           a.Year,
		OldAdvance:     a.OldAdvance,
		CurrentAdvance: a.CurrentAdvance,
		Deduction:      a.Deduction,
		NewAdvance:     a.NewAdvance,
		Notes:          a.Notes,
	}
}
