package attendance

import (
	"time"
)

// Status enum
type Status string

const (
	StatusPresent Status = "Present"
	StatusHalfDay Status = "Half Day"
	StatusAbsent  Status = "Absent"
)

// Value returns the fractional day a status is worth in pro-ration
// arithmetic: 1 for Present, 0.5 for Half Day, 0 for Absent.
func (s Status) Value() float64 {
	switch s {
	case StatusPresent:
		return 1
	case StatusHalfDay:
		return 0.5
	default:
		return 0
	}
}

// IsValidStatus reports whether s names a known attendance status.
func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPresent, StatusHalfDay, StatusAbsent:
		return true
	}
	return false
}

// Shift enum for part-time entries. Morning and Evening are half-day
// equivalents; Both is a full day.
type Shift string

const (
	ShiftMorning Shift = "Morning"
	ShiftEvening Shift = "Evening"
	ShiftBoth    Shift = "Both"
)

// IsValidShift reports whether s names a known part-time shift.
func IsValidShift(s string) bool {
	switch Shift(s) {
	case ShiftMorning, ShiftEvening, ShiftBoth:
		return true
	}
	return false
}

// FullTimeAttendance is a single (staff, date) observation for a rostered
// full-time member. Exactly one record exists per staff member per date.
type FullTimeAttendance struct {
	ID              string
	StaffID         string
	Date            time.Time
	Status          Status
	AttendanceValue float64
	IsSunday        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PartTimeAttendance is an ad-hoc daily entry for a part-time worker.
// Part-timers are not rostered; the name is the de facto identity within a
// month and each entry carries its own generated ID.
type PartTimeAttendance struct {
	ID             string
	StaffName      string
	Location       string
	Date           time.Time
	Status         Status
	Shift          Shift
	Salary         int
	SalaryOverride bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
