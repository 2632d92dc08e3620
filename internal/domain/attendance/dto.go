package attendance

import (
	"github.com/shopstaff/staffpay-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	StaffID string `json:"staff_id"`
	Date    string `json:"date"`
	Status  string `json:"status"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be Present, Half Day or Absent"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkMarkAttendanceRequest struct {
	Date    string            `json:"date"`
	Entries []BulkMarkedEntry `json:"entries"`
}

type BulkMarkedEntry struct {
	StaffID string `json:"staff_id"`
	Status  string `json:"status"`
}

func (r *BulkMarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{Field: "entries", Message: "must not be empty"})
	}
	for _, e := range r.Entries {
		if validator.IsEmpty(e.StaffID) {
			errs = append(errs, validator.ValidationError{Field: "entries", Message: "each entry requires a staff_id"})
			break
		}
		if !IsValidStatus(e.Status) {
			errs = append(errs, validator.ValidationError{Field: "entries", Message: "each status must be Present, Half Day or Absent"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddPartTimeEntryRequest struct {
	StaffName string `json:"staff_name"`
	Location  string `json:"location"`
	Date      string `json:"date"`
	Shift     string `json:"shift"`
	Salary    *int   `json:"salary,omitempty"`
}

func (r *AddPartTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffName) {
		errs = append(errs, validator.ValidationError{Field: "staff_name", Message: "is required"})
	}
	if validator.IsEmpty(r.Location) {
		errs = append(errs, validator.ValidationError{Field: "location", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !IsValidShift(r.Shift) {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "must be Morning, Evening or Both"})
	}
	if r.Salary != nil && *r.Salary < 0 {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePartTimeSalaryRequest struct {
	Salary int `json:"salary"`
}

func (r *UpdatePartTimeSalaryRequest) Validate() error {
	if r.Salary < 0 {
		return validator.ValidationErrors{{Field: "salary", Message: "must be non-negative"}}
	}
	return nil
}

type FullTimeAttendanceResponse struct {
	ID              string  `json:"id"`
	StaffID         string  `json:"staff_id"`
	Date            string  `json:"date"`
	Status          string  `json:"status"`
	AttendanceValue float64 `json:"attendance_value"`
	IsSunday        bool    `json:"is_sunday"`
}

func ToFullTimeResponse(a FullTimeAttendance) FullTimeAttendanceResponse {
	return FullTimeAttendanceResponse{
		ID:              a.ID,
		StaffID:         a.StaffID,
		Date:            a.Date.Format("2006-01-02"),
		Status:          string(a.Status),
		AttendanceValue: a.AttendanceValue,
		IsSunday:        a.IsSunday,
	}
}

type PartTimeAttendanceResponse struct {
	ID             string `json:"id"`
	StaffName      string `json:"staff_name"`
	Location       string `json:"location"`
	Date           string `json:"date"`
	Status         string `json:"status"`
	Shift          string `json:"shift"`
	Salary         int    `json:"salary"`
	SalaryOverride bool   `json:"salary_override"`
}

func ToPartTimeResponse(a PartTimeAttendance) PartTimeAttendanceResponse {
	return PartTimeAttendanceResponse{
		ID:             a.ID,
		StaffName:      a.StaffName,
		Location:       a.Location,
		Date:           a.Date.Format("2006-01-02"),
		Status:         string(a.Status),
		Shift:          string(a.Shift),
		Salary:         a.Salary,
		SalaryOverride: a.SalaryOverride,
	}
}

type DayAttendanceResponse struct {
	Date     string                       `json:"date"`
	FullTime []FullTimeAttendanceResponse `json:"full_time"`
	PartTime []PartTimeAttendanceResponse `json:"part_time"`
}
