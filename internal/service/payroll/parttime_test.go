package payroll

import (
	"testing"
	"time"

	"github.com/shopstaff/staffpay-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func partTimeEntry(name string, t time.Time, shift attendance.Shift, salary int, override bool) attendance.PartTimeAttendance {
	return attendance.PartTimeAttendance{
		StaffName:      name,
		Location:       "Big Shop",
		Date:           t,
		Status:         attendance.StatusPresent,
		Shift:          shift,
		Salary:         salary,
		SalaryOverride: override,
	}
}

func TestPartTimeEarnings_ShiftCounting(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(DefaultCalculatorConfig())

	tests := []struct {
		name         string
		shift        attendance.Shift
		wantDays     int
		wantShifts   int
		wantEarnings int
	}{
		{"both shifts counts a day and two shifts", attendance.ShiftBoth, 1, 2, 1600},
		{"morning counts a single shift, no day", attendance.ShiftMorning, 0, 1, 400},
		{"evening counts a single shift, no day", attendance.ShiftEvening, 0, 1, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []attendance.PartTimeAttendance{
				partTimeEntry("Ravi", date(2024, time.March, 5), tt.shift, 350, false),
			}

			detail, err := calc.PartTimeEarnings("Ravi", "Big Shop", records, 2024, 2)
			require.NoError(t, err)

			assert.Equal(t, tt.wantDays, detail.TotalDays)
			assert.Equal(t, tt.wantShifts, detail.TotalShifts)
			// round10(days*800 + shifts*400)
			assert.Equal(t, tt.wantEarnings, detail.TotalEarnings)
		})
	}
}

func TestPartTimeEarnings_FiltersMonthNameAndStatus(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(DefaultCalculatorConfig())

	records := []attendance.PartTimeAttendance{
		partTimeEntry("Ravi", date(2024, time.March, 5), attendance.ShiftBoth, 350, false),
		partTimeEntry("Ravi", date(2024, time.February, 5), attendance.ShiftBoth, 350, false), // other month
		partTimeEntry("Mani", date(2024, time.March, 5), attendance.ShiftBoth, 350, false),    // other worker
	}
	absent := partTimeEntry("Ravi", date(2024, time.March, 6), attendance.ShiftBoth, 350, false)
	absent.Status = attendance.StatusAbsent
	records = append(records, absent)

	detail, err := calc.PartTimeEarnings("Ravi", "Big Shop", records, 2024, 2)
	require.NoError(t, err)

	assert.Equal(t, 1, detail.TotalDays)
	assert.Equal(t, 2, detail.TotalShifts)
}

func TestPartTimeEarnings_WeeklyBreakdown(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(DefaultCalculatorConfig())

	// April 2024: the 1st is a Monday, so weeks split cleanly at the 8th.
	records := []attendance.PartTimeAttendance{
		partTimeEntry("Ravi", date(2024, time.April, 1), attendance.ShiftBoth, 350, false),    // week 1, Monday
		partTimeEntry("Ravi", date(2024, time.April, 7), attendance.ShiftMorning, 400, false), // week 1, Sunday
		partTimeEntry("Ravi", date(2024, time.April, 8), attendance.ShiftBoth, 500, true),     // week 2, override
	}

	detail, err := calc.PartTimeEarnings("Ravi", "Big Shop", records, 2024, 3)
	require.NoError(t, err)

	require.Len(t, detail.WeeklyBreakdown, 2)

	week1 := detail.WeeklyBreakdown[0]
	assert.Equal(t, 1, week1.Week)
	require.Len(t, week1.Days, 2)
	assert.Equal(t, "2024-04-01", week1.Days[0].Date)
	assert.Equal(t, "Monday", week1.Days[0].DayOfWeek)
	assert.False(t, week1.Days[0].IsSunday)
	assert.True(t, week1.Days[1].IsSunday)
	assert.Equal(t, 750, week1.WeekTotal)

	week2 := detail.WeeklyBreakdown[1]
	assert.Equal(t, 2, week2.Week)
	assert.Equal(t, 500, week2.WeekTotal)
	assert.True(t, week2.Days[0].IsOverride)
}

func TestPartTimeEarnings_DailyDefaultRates(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(DefaultCalculatorConfig())

	// Entries saved without a salary pick up the daily default:
	// Mon-Sat 350, Sunday 400.
	records := []attendance.PartTimeAttendance{
		partTimeEntry("Ravi", date(2024, time.April, 2), attendance.ShiftBoth, 0, false), // Tuesday
		partTimeEntry("Ravi", date(2024, time.April, 7), attendance.ShiftBoth, 0, false), // Sunday
	}

	detail, err := calc.PartTimeEarnings("Ravi", "Big Shop", records, 2024, 3)
	require.NoError(t, err)

	require.Len(t, detail.WeeklyBreakdown, 1)
	days := detail.WeeklyBreakdown[0].Days
	require.Len(t, days, 2)
	assert.Equal(t, 350, days[0].Salary)
	assert.Equal(t, 400, days[1].Salary)
}

func TestPartTimeEarnings_EmptyMonth(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(DefaultCalculatorConfig())

	detail, err := calc.PartTimeEarnings("Ravi", "Big Shop", nil, 2024, 2)
	require.NoError(t, err)

	assert.Equal(t, 0, detail.TotalDays)
	assert.Equal(t, 0, detail.TotalShifts)
	assert.Equal(t, 0, detail.TotalEarnings)
	assert.Empty(t, detail.WeeklyBreakdown)
}
