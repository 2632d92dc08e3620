package payroll

import (
	"github.com/shopstaff/staffpay-backend-go/internal/domain/advance"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/attendance"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/payroll"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/staff"
	"github.com/shopstaff/staffpay-backend-go/internal/pkg/dateutil"
	"github.com/shopstaff/staffpay-backend-go/internal/pkg/money"
)

// Calculator holds the payroll rules and turns attendance records, salary
// components and the advance ledger into monthly settlements. All methods
// are pure functions of their inputs; the service layer supplies the data
// and persists nothing from here.
type Calculator struct {
	cfg CalculatorConfig
}

// CalculatorConfig carries the shop's payroll constants.
type CalculatorConfig struct {
	// WorkingDayBaseline is the divisor for pro-ration. Pay is scaled
	// against 26 working days regardless of the calendar length of the
	// month.
	WorkingDayBaseline int

	// NearFullThreshold is the attendance value from which incentive and
	// HRA are still paid in full even though basic is pro-rated.
	NearFullThreshold float64

	// SundayPenalty is the deduction per Sunday absence, taken from the
	// incentive and capped by it.
	SundayPenalty int

	// ProRateHRA pro-rates HRA below the near-full threshold. The standing
	// business rule pays HRA in full regardless of attendance, so this
	// defaults to false.
	ProRateHRA bool

	// PartTimeRates is the canonical part-time rate table.
	PartTimeRates payroll.PartTimeRates
}

// DefaultCalculatorConfig returns the shop's standing payroll rules.
func DefaultCalculatorConfig() CalculatorConfig {
	return CalculatorConfig{
		WorkingDayBaseline: 26,
		NearFullThreshold:  25,
		SundayPenalty:      500,
		ProRateHRA:         false,
		PartTimeRates:      payroll.DefaultPartTimeRates,
	}
}

// NewCalculator builds a calculator; zero fields fall back to the defaults.
func NewCalculator(cfg CalculatorConfig) *Calculator {
	def := DefaultCalculatorConfig()
	if cfg.WorkingDayBaseline == 0 {
		cfg.WorkingDayBaseline = def.WorkingDayBaseline
	}
	if cfg.NearFullThreshold == 0 {
		cfg.NearFullThreshold = def.NearFullThreshold
	}
	if cfg.SundayPenalty == 0 {
		cfg.SundayPenalty = def.SundayPenalty
	}
	if cfg.PartTimeRates == (payroll.PartTimeRates{}) {
		cfg.PartTimeRates = def.PartTimeRates
	}
	return &Calculator{cfg: cfg}
}

// Rates exposes the canonical part-time rate table.
func (c *Calculator) Rates() payroll.PartTimeRates {
	return c.cfg.PartTimeRates
}

// AttendanceMetrics reduces one staff member's full-time attendance for a
// month. Records for other staff or months are ignored, so callers may pass
// an unfiltered list.
func (c *Calculator) AttendanceMetrics(staffID string, records []attendance.FullTimeAttendance, year, month0 int) (payroll.AttendanceMetrics, error) {
	if month0 < 0 || month0 > 11 {
		return payroll.AttendanceMetrics{}, payroll.ErrInvalidMonth
	}

	var presentValue, halfValue float64
	sundayAbsents := 0

	for _, rec := range records {
		if rec.StaffID != staffID || !dateutil.SameMonth(rec.Date, year, month0) {
			continue
		}
		switch rec.Status {
		case attendance.StatusPresent:
			v := rec.AttendanceValue
			if v == 0 {
				v = 1
			}
			presentValue += v
		case attendance.StatusHalfDay:
			v := rec.AttendanceValue
			if v == 0 {
				v = 0.5
			}
			halfValue += v
		case attendance.StatusAbsent:
			if rec.IsSunday || dateutil.IsSunday(rec.Date) {
				sundayAbsents++
			}
		}
	}

	totalPresent := presentValue + halfValue
	daysInMonth := dateutil.DaysInMonth(year, month0)

	return payroll.AttendanceMetrics{
		PresentDays:      int(presentValue),
		HalfDays:         int(halfValue * 2), // report half days as a count
		TotalPresentDays: totalPresent,
		LeaveDays:        daysInMonth - int(totalPresent),
		SundayAbsents:    sundayAbsents,
		DaysInMonth:      daysInMonth,
	}, nil
}

// PreviousMonthAdvance resolves the carry-forward opening balance: the
// closing balance of the staff member's previous-month ledger line, or 0
// when none exists. January looks back at December of the previous year.
func (c *Calculator) PreviousMonthAdvance(staffID string, advances []advance.AdvanceDeduction, month0, year int) int {
	prevMonth, prevYear := dateutil.PrevMonth(month0, year)

	for _, adv := range advances {
		if adv.StaffID == staffID && adv.Month == prevMonth && adv.Year == prevYear {
			return adv.NewAdvance
		}
	}
	return 0
}

// Settlement combines a staff member's salary components, attendance
// metrics and advance figures into the monthly settlement. adv may be nil
// when no explicit ledger line exists for the month; the opening balance
// then comes from the carry-forward resolver over history.
func (c *Calculator) Settlement(
	member staff.Staff,
	metrics payroll.AttendanceMetrics,
	adv *advance.AdvanceDeduction,
	history []advance.AdvanceDeduction,
	month0, year int,
) (payroll.SalaryDetail, error) {
	if month0 < 0 || month0 > 11 {
		return payroll.SalaryDetail{}, payroll.ErrInvalidMonth
	}
	if member.BasicSalary < 0 || member.Incentive < 0 || member.HRA < 0 {
		return payroll.SalaryDetail{}, payroll.ErrNegativeSalary
	}

	baseline := c.cfg.WorkingDayBaseline
	total := metrics.TotalPresentDays

	var basicEarned, incentiveEarned, hraEarned int
	switch {
	case total == float64(baseline):
		basicEarned = member.BasicSalary
		incentiveEarned = member.Incentive
		hraEarned = member.HRA
	case total >= c.cfg.NearFullThreshold:
		basicEarned = money.ProRate(member.BasicSalary, total, baseline)
		incentiveEarned = member.Incentive
		hraEarned = member.HRA
	default:
		basicEarned = money.ProRate(member.BasicSalary, total, baseline)
		incentiveEarned = money.ProRate(member.Incentive, total, baseline)
		if c.cfg.ProRateHRA {
			hraEarned = money.ProRate(member.HRA, total, baseline)
		} else {
			// Standing rule: HRA is a fixed stipend, paid in full even
			// below the threshold.
			hraEarned = member.HRA
		}
	}

	// Sunday penalty comes out of the incentive and is capped by it; any
	// shortfall is absorbed, not carried elsewhere.
	sundayPenalty := 0
	adjustedIncentive := incentiveEarned
	if metrics.SundayAbsents > 0 {
		totalPenalty := metrics.SundayAbsents * c.cfg.SundayPenalty
		if adjustedIncentive >= totalPenalty {
			adjustedIncentive -= totalPenalty
			sundayPenalty = totalPenalty
		} else {
			sundayPenalty = adjustedIncentive
			adjustedIncentive = 0
		}
	}

	grossSalary := money.RoundInt64ToNearest10(int64(basicEarned + adjustedIncentive + hraEarned))

	// Explicit ledger line wins; a missing line (or a zero opening
	// balance) falls back to carrying last month's closing balance forward.
	var oldAdv, curAdv, deduction int
	if adv != nil {
		oldAdv = adv.OldAdvance
		curAdv = adv.CurrentAdvance
		deduction = adv.Deduction
	}
	if oldAdv == 0 {
		oldAdv = c.PreviousMonthAdvance(member.ID, history, month0, year)
	}

	newAdv := money.RoundInt64ToNearest10(int64(oldAdv + curAdv - deduction))

	netSalary := money.RoundInt64ToNearest10(int64(grossSalary - curAdv - deduction))
	if netSalary < 0 {
		netSalary = 0
	}

	return payroll.SalaryDetail{
		StaffID:         member.ID,
		Month:           month0,
		Year:            year,
		PresentDays:     metrics.PresentDays,
		HalfDays:        metrics.HalfDays,
		LeaveDays:       metrics.LeaveDays,
		SundayAbsents:   metrics.SundayAbsents,
		OldAdv:          money.RoundInt64ToNearest10(int64(oldAdv)),
		CurAdv:          money.RoundInt64ToNearest10(int64(curAdv)),
		Deduction:       money.RoundInt64ToNearest10(int64(deduction)),
		BasicEarned:     money.RoundInt64ToNearest10(int64(basicEarned)),
		IncentiveEarned: money.RoundInt64ToNearest10(int64(adjustedIncentive)),
		HRAEarned:       money.RoundInt64ToNearest10(int64(hraEarned)),
		SundayPenalty:   money.RoundInt64ToNearest10(int64(sundayPenalty)),
		GrossSalary:     grossSalary,
		NewAdv:          newAdv,
		NetSalary:       netSalary,
		IsProcessed:     false,
	}, nil
}
