package payroll

import (
	"sort"

	"github.com/shopstaff/staffpay-backend-go/internal/domain/attendance"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/payroll"
	"github.com/shopstaff/staffpay-backend-go/internal/pkg/dateutil"
	"github.com/shopstaff/staffpay-backend-go/internal/pkg/money"
)

// PartTimeEarnings aggregates one part-time worker's month. Only Present
// entries count: a Both shift adds a day and two shifts, Morning or Evening
// adds a single shift with no day (a lone half shift earns no day rate).
// The weekly breakdown buckets present days into Monday-start weeks of the
// month, each with its subtotal of per-entry salaries (overrides win over
// the daily default).
func (c *Calculator) PartTimeEarnings(staffName, location string, records []attendance.PartTimeAttendance, year, month0 int) (payroll.PartTimeSalaryDetail, error) {
	if month0 < 0 || month0 > 11 {
		return payroll.PartTimeSalaryDetail{}, payroll.ErrInvalidMonth
	}

	rates := c.cfg.PartTimeRates

	var monthly []attendance.PartTimeAttendance
	for _, rec := range records {
		if rec.StaffName != staffName || !dateutil.SameMonth(rec.Date, year, month0) {
			continue
		}
		if rec.Status != attendance.StatusPresent {
			continue
		}
		monthly = append(monthly, rec)
	}

	totalDays := 0
	totalShifts := 0
	for _, rec := range monthly {
		switch rec.Shift {
		case attendance.ShiftBoth:
			totalDays++
			totalShifts += 2
		case attendance.ShiftMorning, attendance.ShiftEvening:
			totalShifts++
		}
	}

	totalEarnings := money.RoundInt64ToNearest10(int64(totalDays*rates.PerDay + totalShifts*rates.PerShift))

	return payroll.PartTimeSalaryDetail{
		StaffName:       staffName,
		Location:        location,
		TotalDays:       totalDays,
		TotalShifts:     totalShifts,
		RatePerDay:      rates.PerDay,
		RatePerShift:    rates.PerShift,
		TotalEarnings:   totalEarnings,
		Month:           month0,
		Year:            year,
		WeeklyBreakdown: c.weeklyBreakdown(monthly),
	}, nil
}

func (c *Calculator) weeklyBreakdown(monthly []attendance.PartTimeAttendance) []payroll.WeeklyEarnings {
	rates := c.cfg.PartTimeRates

	byWeek := make(map[int][]payroll.DailyEarning)
	for _, rec := range monthly {
		isSunday := dateutil.IsSunday(rec.Date)

		salary := rec.Salary
		if !rec.SalaryOverride && salary == 0 {
			salary = rates.DailyDefault(isSunday)
		}

		week := dateutil.WeekOfMonth(rec.Date)
		byWeek[week] = append(byWeek[week], payroll.DailyEarning{
			Date:       rec.Date.Format(dateutil.DateLayout),
			DayOfWeek:  rec.Date.Weekday().String(),
			IsSunday:   isSunday,
			Shift:      string(rec.Shift),
			Salary:     salary,
			IsOverride: rec.SalaryOverride,
		})
	}

	weeks := make([]int, 0, len(byWeek))
	for w := range byWeek {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)

	breakdown := make([]payroll.WeeklyEarnings, 0, len(weeks))
	for _, w := range weeks {
		days := byWeek[w]
		sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

		weekTotal := 0
		for _, d := range days {
			weekTotal += d.Salary
		}
		breakdown = append(breakdown, payroll.WeeklyEarnings{
			Week:      w,
			Days:      days,
			WeekTotal: weekTotal,
		})
	}
	return breakdown
}
