package staff

import "time"

// Location of a shop site. The roster stores display names directly so
// historical records survive master-data edits.
type Location string

const (
	LocationBigShop   Location = "Big Shop"
	LocationSmallShop Location = "Small Shop"
	LocationGodown    Location = "Godown"
)

// IsValidLocation reports whether s names a known shop location.
func IsValidLocation(s string) bool {
	switch Location(s) {
	case LocationBigShop, LocationSmallShop, LocationGodown:
		return true
	}
	return false
}

// StaffType distinguishes rostered full-time members from ad-hoc part-time
// workers. Only full-timers get monthly settlements and an advance ledger.
type StaffType string

const (
	TypeFullTime StaffType = "full-time"
	TypePartTime StaffType = "part-time"
)

// IsValidStaffType reports whether s names a known staff type.
func IsValidStaffType(s string) bool {
	switch StaffType(s) {
	case TypeFullTime, TypePartTime:
		return true
	}
	return false
}

// Staff is an active roster member. Invariant: TotalSalary is always the sum
// of BasicSalary, Incentive and HRA.
type Staff struct {
	ID          string
	Name        string
	Location    Location
	Type        StaffType
	Experience  string
	BasicSalary int
	Incentive   int
	HRA         int
	TotalSalary int
	JoinedDate  time.Time
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecomputeTotal restores the TotalSalary invariant.
func (s *Staff) RecomputeTotal() {
	s.TotalSalary = s.BasicSalary + s.Incentive + s.HRA
}

// OldStaffRecord is an archived roster snapshot. It keeps the salary
// components and the outstanding advance at the moment of leaving so a later
// rejoin can restore both.
type OldStaffRecord struct {
	ID                 string
	StaffID            string
	Name               string
	Location           Location
	Type               StaffType
	Experience         string
	BasicSalary        int
	Incentive          int
	HRA                int
	TotalSalary        int
	JoinedDate         time.Time
	LeftDate           time.Time
	Reason             string
	OutstandingAdvance int
	CreatedAt          time.Time
}

// Archive produces the archived snapshot for an active member leaving on
// leftDate with the given outstanding advance balance.
func (s *Staff) Archive(reason string, outstandingAdvance int, leftDate time.Time) OldStaffRecord {
	return OldStaffRecord{
		StaffID:            s.ID,
		Name:               s.Name,
		Location:           s.Location,
		Type:               s.Type,
		Experience:         s.Experience,
		BasicSalary:        s.BasicSalary,
		Incentive:          s.Incentive,
		HRA:                s.HRA,
		TotalSalary:        s.TotalSalary,
		JoinedDate:         s.JoinedDate,
		LeftDate:           leftDate,
		Reason:             reason,
		OutstandingAdvance: outstandingAdvance,
	}
}

// Rejoin turns an archived record back into a fresh active member joining on
// joinDate. The outstanding advance is returned separately so the caller can
// re-seed the advance ledger for the rejoin month.
func (r *OldStaffRecord) Rejoin(joinDate time.Time) (Staff, int) {
	s := Staff{
		Name:        r.Name,
		Location:    r.Location,
		Type:        r.Type,
		Experience:  r.Experience,
		BasicSalary: r.BasicSalary,
		Incentive:   r.Incentive,
		HRA:         r.HRA,
		JoinedDate:  joinDate,
		IsActive:    true,
	}
	s.RecomputeTotal()
	return s, r.OutstandingAdvance
}
