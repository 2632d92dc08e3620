package payroll

type SalaryDetailResponse struct {
	StaffID         string `json:"staff_id"`
	StaffName       string `json:"staff_name,omitempty"`
	Location        string `json:"location,omitempty"`
	Month           int    `json:"month"`
	Year            int    `json:"year"`
	PresentDays     int    `json:"present_days"`
	HalfDays        int    `json:"half_days"`
	LeaveDays       int    `json:"leave_days"`
	SundayAbsents   int    `json:"sunday_absents"`
	OldAdv          int    `json:"old_adv"`
	CurAdv          int    `json:"cur_adv"`
	Deduction       int    `json:"deduction"`
	BasicEarned     int    `json:"basic_earned"`
	IncentiveEarned int    `json:"incentive_earned"`
	HRAEarned       int    `json:"hra_earned"`
	SundayPenalty   int    `json:"sunday_penalty"`
	GrossSalary     int    `json:"gross_salary"`
	NewAdv          int    `json:"new_adv"`
	NetSalary       int    `json:"net_salary"`
	IsProcessed     bool   `json:"is_processed"`
}

func ToSalaryDetailResponse(d SalaryDetail, staffName, location string) SalaryDetailResponse {
	return SalaryDetailResponse{
		StaffID:         d.StaffID,
		StaffName:       staffName,
		Location:        location,
		Month:           d.Month,
		Year:            d.Year,
		PresentDays:     d.PresentDays,
		HalfDays:        d.HalfDays,
		LeaveDays:       d.LeaveDays,
		SundayAbsents:   d.SundayAbsents,
		OldAdv:          d.OldAdv,
		CurAdv:          d.CurAdv,
		Deduction:       d.Deduction,
		BasicEarned:     d.BasicEarned,
		IncentiveEarned: d.IncentiveEarned,
		HRAEarned:       d.HRAEarned,
		SundayPenalty:   d.SundayPenalty,
		GrossSalary:     d.GrossSalary,
		NewAdv:          d.NewAdv,
		NetSalary:       d.NetSalary,
		IsProcessed:     d.IsProcessed,
	}
}

type DailyEarningResponse struct {
	Date       string `json:"date"`
	DayOfWeek  string `json:"day_of_week"`
	IsSunday   bool   `json:"is_sunday"`
	Shift      string `json:"shift"`
	Salary     int    `json:"salary"`
	IsOverride bool   `json:"is_override"`
}

type WeeklyEarningsResponse struct {
	Week      int                    `json:"week"`
	Days      []DailyEarningResponse `json:"days"`
	WeekTotal int                    `json:"week_total"`
}

type PartTimeSalaryResponse struct {
	StaffName       string                   `json:"staff_name"`
	Location        string                   `json:"location"`
	Month           int                      `json:"month"`
	Year            int                      `json:"year"`
	TotalDays       int                      `json:"total_days"`
	TotalShifts     int                      `json:"total_shifts"`
	RatePerDay      int                      `json:"rate_per_day"`
	RatePerShift    int                      `json:"rate_per_shift"`
	TotalEarnings   int                      `json:"total_earnings"`
	WeeklyBreakdown []WeeklyEarningsResponse `json:"weekly_breakdown"`
}

func ToPartTimeSalaryResponse(d PartTimeSalaryDetail) PartTimeSalaryResponse {
	weeks := make([]WeeklyEarningsResponse, 0, len(d.WeeklyBreakdown))
	for _, w := range d.WeeklyBreakdown {
		days := make([]DailyEarningResponse, 0, len(w.Days))
		for _, day := range w.Days {
			days = append(days, DailyEarningResponse{
				Date:       day.Date,
				DayOfWeek:  day.DayOfWeek,
				IsSunday:   day.IsSunday,
				Shift:      day.Shift,
				Salary:     day.Salary,
				IsOverride: day.IsOverride,
			})
		}
		weeks = append(weeks, WeeklyEarningsResponse{Week: w.Week, Days: days, WeekTotal: w.WeekTotal})
	}
	return PartTimeSalaryResponse{
		StaffName:       d.StaffName,
		Location:        d.Location,
		Month:           d.Month,
		Year:            d.Year,
		TotalDays:       d.TotalDays,
		TotalShifts:     d.TotalShifts,
		RatePerDay:      d.RatePerDay,
		RatePerShift:    d.RatePerShift,
		TotalEarnings:   d.TotalEarnings,
		WeeklyBreakdown: weeks,
	}
}
