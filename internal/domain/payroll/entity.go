package payroll

// AttendanceMetrics is the reduction of one staff member's full-time
// attendance for a month. TotalPresentDays keeps its fraction (half days
// count 0.5) because it drives pro-ration; PresentDays and HalfDays are the
// floored display counts (3 half days report as 3, not 1.5).
type AttendanceMetrics struct {
	PresentDays      int
	HalfDays         int
	TotalPresentDays float64
	LeaveDays        int
	SundayAbsents    int
	DaysInMonth      int
}

// SalaryDetail is a monthly settlement for one full-time staff member.
// It is derived on demand from attendance and the advance ledger, never the
// source of truth. Month is 0-indexed. All monetary fields are multiples
// of 10.
type SalaryDetail struct {
	StaffID         string
	Month           int
	Year            int
	PresentDays     int
	HalfDays        int
	LeaveDays       int
	SundayAbsents   int
	OldAdv          int
	CurAdv          int
	Deduction       int
	BasicEarned     int
	IncentiveEarned int
	HRAEarned       int
	SundayPenalty   int
	GrossSalary     int
	NewAdv          int
	NetSalary       int
	IsProcessed     bool
}

// PartTimeRates is the canonical part-time rate table. The monthly
// aggregate pays PerDay for each Both-shift day plus PerShift for each
// shift worked; the per-entry daily default is Weekday Mon-Sat and Sunday
// on Sundays.
type PartTimeRates struct {
	PerDay   int
	PerShift int
	Weekday  int
	Sunday   int
}

// DefaultPartTimeRates are the shop's standing part-time rates.
var DefaultPartTimeRates = PartTimeRates{
	PerDay:   800,
	PerShift: 400,
	Weekday:  350,
	Sunday:   400,
}

// DailyDefault returns the default per-entry salary for a date.
func (r PartTimeRates) DailyDefault(isSunday bool) int {
	if isSunday {
		return r.Sunday
	}
	return r.Weekday
}

// DailyEarning is one present day inside a weekly breakdown.
type DailyEarning struct {
	Date       string
	DayOfWeek  string
	IsSunday   bool
	Shift      string
	Salary     int
	IsOverride bool
}

// WeeklyEarnings groups the present days of one Monday-start week of the
// month with their subtotal.
type WeeklyEarnings struct {
	Week      int
	Days      []DailyEarning
	WeekTotal int
}

// PartTimeSalaryDetail is the monthly aggregate for one part-time worker,
// keyed by name and location since part-timers are not rostered.
type PartTimeSalaryDetail struct {
	StaffName       string
	Location        string
	TotalDays       int
	TotalShifts     int
	RatePerDay      int
	RatePerShift    int
	TotalEarnings   int
	Month           int
	Year            int
	WeeklyBreakdown []WeeklyEarnings
}
