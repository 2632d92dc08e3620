package staff

import (
	"github.com/shopstaff/staffpay-backend-go/internal/pkg/validator"
)

type CreateStaffRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Experience  string `json:"experience,omitempty"`
	BasicSalary int    `json:"basic_salary"`
	Incentive   int    `json:"incentive"`
	HRA         int    `json:"hra"`
	JoinedDate  string `json:"joined_date"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !IsValidLocation(r.Location) {
		errs = append(errs, validator.ValidationError{Field: "location", Message: "must be Big Shop, Small Shop or Godown"})
	}
	if !IsValidStaffType(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be full-time or part-time"})
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
	if _, ok := validator.IsValidDate(r.JoinedDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "joined_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStaffRequest struct {
	Name        *string `json:"name,omitempty"`
	Location    *string `json:"location,omitempty"`
	Experience  *string `json:"experience,omitempty"`
	BasicSalary *int    `json:"basic_salary,omitempty"`
	Incentive   *int    `json:"incentive,omitempty"`
	HRA         *int    `json:"hra,omitempty"`
}

func (r *UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Location != nil && !IsValidLocation(*r.Location) {
		errs = append(errs, validator.ValidationError{Field: "location", Message: "must be Big Shop, Small Shop or Godown"})
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

type ArchiveStaffRequest struct {
	Reason   string `json:"reason"`
	LeftDate string `json:"left_date"`
}

func (r *ArchiveStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.LeftDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "left_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejoinStaffRequest struct {
	JoinedDate string `json:"joined_date"`
}

func (r *RejoinStaffRequest) Validate() error {
	if _, ok := validator.IsValidDate(r.JoinedDate); !ok {
		return validator.ValidationErrors{{Field: "joined_date", Message: "must be YYYY-MM-DD"}}
	}
	return nil
}

type StaffResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Experience  string `json:"experience,omitempty"`
	BasicSalary int    `json:"basic_salary"`
	Incentive   int    `json:"incentive"`
	HRA         int    `json:"hra"`
	TotalSalary int    `json:"total_salary"`
	JoinedDate  string `json:"joined_date"`
	IsActive    bool   `json:"is_active"`
}

func ToStaffResponse(s Staff) StaffResponse {
	return StaffResponse{
		ID:          s.ID,
		Name:        s.Name,
		Location:    string(s.Location),
		Type:        string(s.Type),
		Experience:  s.Experience,
		BasicSalary: s.BasicSalary,
		Incentive:   s.Incentive,
		HRA:         s.HRA,
		TotalSalary: s.TotalSalary,
		JoinedDate:  s.JoinedDate.Format("2006-01-02"),
		IsActive:    s.IsActive,
	}
}

type OldStaffResponse struct {
	ID                 string `json:"id"`
	StaffID            string `json:"staff_id"`
	Name               string `json:"name"`
	Location           string `json:"location"`
	Type               string `json:"type"`
	Experience         string `json:"experience,omitempty"`
	BasicSalary        int    `json:"basic_salary"`
	Incentive          int    `json:"incentive"`
	HRA                int    `json:"hra"`
	TotalSalary        int    `json:"total_salary"`
	JoinedDate         string `json:"joined_date"`
	LeftDate           string `json:"left_date"`
	Reason             string `json:"reason"`
	OutstandingAdvance int    `json:"outstanding_advance"`
}

func ToOldStaffResponse(r OldStaffRecord) OldStaffResponse {
	return OldStaffResponse{
		ID:                 r.ID,
		StaffID:            r.StaffID,
		Name:               r.Name,
		Location:           string(r.Location),
		Type:               string(r.Type),
		Experience:         r.Experience,
		BasicSalary:        r.BasicSalary,
		Incentive:          r.Incentive,
		HRA:                r.HRA,
		TotalSalary:        r.TotalSalary,
		JoinedDate:         r.JoinedDate.Format("2006-01-02"),
		LeftDate:           r.LeftDate.Format("2006-01-02"),
		Reason:             r.Reason,
		OutstandingAdvance: r.OutstandingAdvance,
	}
}
