package dashboard

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopstaff/staffpay-backend-go/internal/domain/attendance"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStaffRepo struct {
	members []staff.Staff
}

func (f *fakeStaffRepo) Create(_ context.Context, s staff.Staff) (staff.Staff, error) {
	f.members = append(f.members, s)
	return s, nil
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (staff.Staff, error) {
	for _, m := range f.members {
		if m.ID == id {
			return m, nil
		}
	}
	return staff.Staff{}, staff.ErrStaffNotFound
}

func (f *fakeStaffRepo) List(_ context.Context, activeOnly bool) ([]staff.Staff, error) {
	var out []staff.Staff
	for _, m := range f.members {
		if activeOnly && !m.IsActive {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeStaffRepo) ListByLocation(_ context.Context, location staff.Location, activeOnly bool) ([]staff.Staff, error) {
	var out []staff.Staff
	for _, m := range f.members {
		if m.Location != location {
			continue
		}
		if activeOnly && !m.IsActive {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeStaffRepo) Update(_ context.Context, s staff.Staff) (staff.Staff, error) {
	return s, nil
}

func (f *fakeStaffRepo) Deactivate(_ context.Context, id string) error {
	return nil
}

type fakeFullTimeRepo struct {
	records []attendance.FullTimeAttendance
}

func (f *fakeFullTimeRepo) Upsert(_ context.Context, record attendance.FullTimeAttendance) (attendance.FullTimeAttendance, error) {
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeFullTimeRepo) BulkUpsert(_ context.Context, records []attendance.FullTimeAttendance) ([]attendance.FullTimeAttendance, error) {
	f.records = append(f.records, records...)
	return records, nil
}

func (f *fakeFullTimeRepo) GetByStaffAndDate(_ context.Context, staffID string, date time.Time) (attendance.FullTimeAttendance, error) {
	for _, r := range f.records {
		if r.StaffID == staffID && r.Date.Equal(date) {
			return r, nil
		}
	}
	return attendance.FullTimeAttendance{}, attendance.ErrRecordNotFound
}

func (f *fakeFullTimeRepo) ListByDate(_ context.Context, date time.Time) ([]attendance.FullTimeAttendance, error) {
	var out []attendance.FullTimeAttendance
	for _, r := range f.records {
		if r.Date.Equal(date) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeFullTimeRepo) ListByStaffAndMonth(_ context.Context, staffID string, year, month0 int) ([]attendance.FullTimeAttendance, error) {
	return nil, nil
}

func (f *fakeFullTimeRepo) ListByMonth(_ context.Context, year, month0 int) ([]attendance.FullTimeAttendance, error) {
	return nil, nil
}

type fakePartTimeRepo struct {
	entries []attendance.PartTimeAttendance
}

func (f *fakePartTimeRepo) Create(_ context.Context, entry attendance.PartTimeAttendance) (attendance.PartTimeAttendance, error) {
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakePartTimeRepo) GetByID(_ context.Context, id string) (attendance.PartTimeAttendance, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return attendance.PartTimeAttendance{}, attendance.ErrRecordNotFound
}

func (f *fakePartTimeRepo) Update(_ context.Context, entry attendance.PartTimeAttendance) (attendance.PartTimeAttendance, error) {
	return entry, nil
}

func (f *fakePartTimeRepo) Delete(_ context.Context, id string) error {
	return nil
}

func (f *fakePartTimeRepo) ListByDate(_ context.Context, date time.Time) ([]attendance.PartTimeAttendance, error) {
	var out []attendance.PartTimeAttendance
	for _, e := range f.entries {
		if e.Date.Equal(date) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakePartTimeRepo) ListByMonth(_ context.Context, year, month0 int) ([]attendance.PartTimeAttendance, error) {
	return nil, nil
}

func (f *fakePartTimeRepo) ListByNameAndMonth(_ context.Context, staffName string, year, month0 int) ([]attendance.PartTimeAttendance, error) {
	return nil, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testDay = time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

func member(id, name string, loc staff.Location) staff.Staff {
	return staff.Staff{ID: id, Name: name, Location: loc, Type: staff.TypeFullTime, IsActive: true}
}

func fullTimeRecord(staffID string, status attendance.Status) attendance.FullTimeAttendance {
	return attendance.FullTimeAttendance{
		StaffID:         staffID,
		Date:            testDay,
		Status:          status,
		AttendanceValue: status.Value(),
	}
}

func TestLocationSummary_Counts(t *testing.T) {
	t.Parallel()

	staffRepo := &fakeStaffRepo{members: []staff.Staff{
		member("s1", "Ravi", staff.LocationBigShop),
		member("s2", "Mohan", staff.LocationBigShop),
		member("s3", "Suresh", staff.LocationBigShop),
		member("s4", "Karthik", staff.LocationGodown),
	}}
	fullTimeRepo := &fakeFullTimeRepo{records: []attendance.FullTimeAttendance{
		fullTimeRecord("s1", attendance.StatusPresent),
		fullTimeRecord("s2", attendance.StatusHalfDay),
		fullTimeRecord("s3", attendance.StatusAbsent),
		fullTimeRecord("s4", attendance.StatusPresent), // other location
	}}
	svc := NewDashboardService(staffRepo, fullTimeRepo, &fakePartTimeRepo{}, testLogger())

	summary, err := svc.LocationSummary(context.Background(), "2024-03-04", string(staff.LocationBigShop))
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalStaff)
	assert.Equal(t, 1, summary.Present)
	assert.Equal(t, 1, summary.HalfDay)
	assert.Equal(t, 1, summary.Absent)
	assert.InDelta(t, 1.5, summary.TotalPresentValue, 0.001)
	assert.Equal(t, []string{"Ravi"}, summary.PresentNames)
	assert.Equal(t, []string{"Mohan"}, summary.HalfDayNames)
	assert.Equal(t, []string{"Suresh"}, summary.AbsentNames)
}

func TestLocationSummary_UnmarkedStaffCountedAbsent(t *testing.T) {
	t.Parallel()

	staffRepo := &fakeStaffRepo{members: []staff.Staff{
		member("s1", "Ravi", staff.LocationSmallShop),
		member("s2", "Mohan", staff.LocationSmallShop),
	}}
	fullTimeRepo := &fakeFullTimeRepo{records: []attendance.FullTimeAttendance{
		fullTimeRecord("s1", attendance.StatusPresent),
	}}
	svc := NewDashboardService(staffRepo, fullTimeRepo, &fakePartTimeRepo{}, testLogger())

	summary, err := svc.LocationSummary(context.Background(), "2024-03-04", string(staff.LocationSmallShop))
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Present)
	assert.Equal(t, 1, summary.Absent)
	assert.Contains(t, summary.AbsentNames, "Mohan")
}

func TestLocationSummary_PartTimeShiftAnnotation(t *testing.T) {
	t.Parallel()

	staffRepo := &fakeStaffRepo{members: []staff.Staff{
		member("s1", "Ravi", staff.LocationGodown),
	}}
	fullTimeRepo := &fakeFullTimeRepo{records: []attendance.FullTimeAttendance{
		fullTimeRecord("s1", attendance.StatusPresent),
	}}
	partTimeRepo := &fakePartTimeRepo{entries: []attendance.PartTimeAttendance{
		{ID: "p1", StaffName: "Anand", Location: string(staff.LocationGodown), Date: testDay, Status: attendance.StatusPresent, Shift: attendance.ShiftBoth},
		{ID: "p2", StaffName: "Vijay", Location: string(staff.LocationGodown), Date: testDay, Status: attendance.StatusPresent, Shift: attendance.ShiftMorning},
		{ID: "p3", StaffName: "Kumar", Location: string(staff.LocationBigShop), Date: testDay, Status: attendance.StatusPresent, Shift: attendance.ShiftEvening},
		{ID: "p4", StaffName: "Raju", Location: string(staff.LocationGodown), Date: testDay, Status: attendance.StatusAbsent, Shift: attendance.ShiftEvening},
	}}
	svc := NewDashboardService(staffRepo, fullTimeRepo, partTimeRepo, testLogger())

	summary, err := svc.LocationSummary(context.Background(), "2024-03-04", string(staff.LocationGodown))
	require.NoError(t, err)

	// one rostered full-timer plus the two present part-timers at this location
	assert.Equal(t, 3, summary.TotalStaff)
	assert.Equal(t, 3, summary.Present)
	assert.InDelta(t, 2.5, summary.TotalPresentValue, 0.001)
	assert.Contains(t, summary.PresentNames, "Anand (Both)")
	assert.Contains(t, summary.PresentNames, "Vijay (Morning)")
	assert.NotContains(t, summary.PresentNames, "Kumar (Evening)")
}

func TestLocationSummary_UnknownStaffRecordDropped(t *testing.T) {
	t.Parallel()

	staffRepo := &fakeStaffRepo{members: []staff.Staff{
		member("s1", "Ravi", staff.LocationBigShop),
	}}
	fullTimeRepo := &fakeFullTimeRepo{records: []attendance.FullTimeAttendance{
		fullTimeRecord("s1", attendance.StatusPresent),
		fullTimeRecord("ghost", attendance.StatusPresent),
	}}
	svc := NewDashboardService(staffRepo, fullTimeRepo, &fakePartTimeRepo{}, testLogger())

	summary, err := svc.LocationSummary(context.Background(), "2024-03-04", string(staff.LocationBigShop))
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalStaff)
	assert.Equal(t, 1, summary.Present)
}

func TestLocationSummary_InvalidLocation(t *testing.T) {
	t.Parallel()

	svc := NewDashboardService(&fakeStaffRepo{}, &fakeFullTimeRepo{}, &fakePartTimeRepo{}, testLogger())

	_, err := svc.LocationSummary(context.Background(), "2024-03-04", "Warehouse")
	assert.ErrorIs(t, err, staff.ErrInvalidLocation)
}

func TestAllLocationSummaries(t *testing.T) {
	t.Parallel()

	staffRepo := &fakeStaffRepo{members: []staff.Staff{
		member("s1", "Ravi", staff.LocationBigShop),
		member("s2", "Mohan", staff.LocationSmallShop),
	}}
	svc := NewDashboardService(staffRepo, &fakeFullTimeRepo{}, &fakePartTimeRepo{}, testLogger())

	summaries, err := svc.AllLocationSummaries(context.Background(), "2024-03-04")
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.Equal(t, string(staff.LocationBigShop), summaries[0].Location)
	assert.Equal(t, string(staff.LocationSmallShop), summaries[1].Location)
	assert.Equal(t, string(staff.LocationGodown), summaries[2].Location)
}
