package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopstaff/staffpay-backend-go/internal/domain/attendance"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/payroll"
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
	return f.members, nil
}

func (f *fakeStaffRepo) ListByLocation(_ context.Context, location staff.Location, activeOnly bool) ([]staff.Staff, error) {
	return nil, nil
}

func (f *fakeStaffRepo) Update(_ context.Context, s staff.Staff) (staff.Staff, error) {
	return s, nil
}

func (f *fakeStaffRepo) Deactivate(_ context.Context, id string) error {
	return nil
}

type fakeFullTimeRepo struct {
	records map[string]attendance.FullTimeAttendance
}

func newFakeFullTimeRepo() *fakeFullTimeRepo {
	return &fakeFullTimeRepo{records: make(map[string]attendance.FullTimeAttendance)}
}

func (f *fakeFullTimeRepo) Upsert(_ context.Context, record attendance.FullTimeAttendance) (attendance.FullTimeAttendance, error) {
	key := record.StaffID + "/" + record.Date.Format("2006-01-02")
	if existing, ok := f.records[key]; ok {
		record.ID = existing.ID
	} else {
		record.ID = fmt.Sprintf("rec-%d", len(f.records)+1)
	}
	f.records[key] = record
	return record, nil
}

func (f *fakeFullTimeRepo) BulkUpsert(ctx context.Context, records []attendance.FullTimeAttendance) ([]attendance.FullTimeAttendance, error) {
	out := make([]attendance.FullTimeAttendance, 0, len(records))
	for _, rec := range records {
		saved, err := f.Upsert(ctx, rec)
		if err != nil {
			return nil, err
		}
		out = append(out, saved)
	}
	return out, nil
}

func (f *fakeFullTimeRepo) GetByStaffAndDate(_ context.Context, staffID string, date time.Time) (attendance.FullTimeAttendance, error) {
	rec, ok := f.records[staffID+"/"+date.Format("2006-01-02")]
	if !ok {
		return attendance.FullTimeAttendance{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeFullTimeRepo) ListByDate(_ context.Context, date time.Time) ([]attendance.FullTimeAttendance, error) {
	var out []attendance.FullTimeAttendance
	for _, rec := range f.records {
		if rec.Date.Equal(date) {
			out = append(out, rec)
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
	entries map[string]attendance.PartTimeAttendance
}

func newFakePartTimeRepo() *fakePartTimeRepo {
	return &fakePartTimeRepo{entries: make(map[string]attendance.PartTimeAttendance)}
}

func (f *fakePartTimeRepo) Create(_ context.Context, entry attendance.PartTimeAttendance) (attendance.PartTimeAttendance, error) {
	entry.ID = fmt.Sprintf("pt-%d", len(f.entries)+1)
	f.entries[entry.ID] = entry
	return entry, nil
}

func (f *fakePartTimeRepo) GetByID(_ context.Context, id string) (attendance.PartTimeAttendance, error) {
	entry, ok := f.entries[id]
	if !ok {
		return attendance.PartTimeAttendance{}, attendance.ErrRecordNotFound
	}
	return entry, nil
}

func (f *fakePartTimeRepo) Update(_ context.Context, entry attendance.PartTimeAttendance) (attendance.PartTimeAttendance, error) {
	if _, ok := f.entries[entry.ID]; !ok {
		return attendance.PartTimeAttendance{}, attendance.ErrRecordNotFound
	}
	f.entries[entry.ID] = entry
	return entry, nil
}

func (f *fakePartTimeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.entries[id]; !ok {
		return attendance.ErrRecordNotFound
	}
	delete(f.entries, id)
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

func newFixture(members ...staff.Staff) (attendance.AttendanceService, *fakeFullTimeRepo, *fakePartTimeRepo) {
	fullTimeRepo := newFakeFullTimeRepo()
	partTimeRepo := newFakePartTimeRepo()
	svc := NewAttendanceService(&fakeStaffRepo{members: members}, fullTimeRepo, partTimeRepo, payroll.DefaultPartTimeRates)
	return svc, fullTimeRepo, partTimeRepo
}

func activeFullTimer(id string) staff.Staff {
	return staff.Staff{ID: id, Name: id, Location: staff.LocationBigShop, Type: staff.TypeFullTime, IsActive: true}
}

func TestMark_DerivesValueAndSundayFlag(t *testing.T) {
	t.Parallel()

	svc, _, _ := newFixture(activeFullTimer("s1"))

	// 2024-03-03 is a Sunday
	resp, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		StaffID: "s1", Date: "2024-03-03", Status: "Half Day",
	})
	require.NoError(t, err)

	assert.Equal(t, 0.5, resp.AttendanceValue)
	assert.True(t, resp.IsSunday)
}

func TestMark_SecondMarkReplacesFirst(t *testing.T) {
	t.Parallel()

	svc, fullTimeRepo, _ := newFixture(activeFullTimer("s1"))

	_, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		StaffID: "s1", Date: "2024-03-04", Status: "Absent",
	})
	require.NoError(t, err)

	resp, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		StaffID: "s1", Date: "2024-03-04", Status: "Present",
	})
	require.NoError(t, err)

	assert.Equal(t, "Present", resp.Status)
	assert.Len(t, fullTimeRepo.records, 1)
}

func TestMark_RejectsInactiveAndPartTime(t *testing.T) {
	t.Parallel()

	inactive := activeFullTimer("s1")
	inactive.IsActive = false
	partTimer := staff.Staff{ID: "p1", Name: "p1", Type: staff.TypePartTime, IsActive: true}

	svc, _, _ := newFixture(inactive, partTimer)

	_, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		StaffID: "s1", Date: "2024-03-04", Status: "Present",
	})
	assert.ErrorIs(t, err, staff.ErrStaffInactive)

	_, err = svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		StaffID: "p1", Date: "2024-03-04", Status: "Present",
	})
	assert.ErrorIs(t, err, attendance.ErrStaffNotRostered)
}

func TestBulkMark(t *testing.T) {
	t.Parallel()

	svc, _, _ := newFixture(activeFullTimer("s1"), activeFullTimer("s2"))

	results, err := svc.BulkMark(context.Background(), attendance.BulkMarkAttendanceRequest{
		Date: "2024-03-04",
		Entries: []attendance.BulkMarkedEntry{
			{StaffID: "s1", Status: "Present"},
			{StaffID: "s2", Status: "Absent"},
		},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Present", results[0].Status)
	assert.Equal(t, "Absent", results[1].Status)
}

func TestAddPartTimeEntry_WeekdayDefaultSalary(t *testing.T) {
	t.Parallel()

	svc, _, _ := newFixture()

	// Monday
	resp, err := svc.AddPartTimeEntry(context.Background(), attendance.AddPartTimeEntryRequest{
		StaffName: "Anand", Location: "Godown", Date: "2024-03-04", Shift: "Morning",
	})
	require.NoError(t, err)

	assert.Equal(t, 350, resp.Salary)
	assert.False(t, resp.SalaryOverride)
}

func TestAddPartTimeEntry_SundayDefaultSalary(t *testing.T) {
	t.Parallel()

	svc, _, _ := newFixture()

	resp, err := svc.AddPartTimeEntry(context.Background(), attendance.AddPartTimeEntryRequest{
		StaffName: "Anand", Location: "Godown", Date: "2024-03-03", Shift: "Both",
	})
	require.NoError(t, err)

	assert.Equal(t, 400, resp.Salary)
	assert.False(t, resp.SalaryOverride)
}

func TestAddPartTimeEntry_ExplicitSalaryOverrides(t *testing.T) {
	t.Parallel()

	svc, _, _ := newFixture()

	salary := 600
	resp, err := svc.AddPartTimeEntry(context.Background(), attendance.AddPartTimeEntryRequest{
		StaffName: "Anand", Location: "Godown", Date: "2024-03-04", Shift: "Both", Salary: &salary,
	})
	require.NoError(t, err)

	assert.Equal(t, 600, resp.Salary)
	assert.True(t, resp.SalaryOverride)
}

func TestUpdatePartTimeSalary_SetsOverride(t *testing.T) {
	t.Parallel()

	svc, _, partTimeRepo := newFixture()

	created, err := svc.AddPartTimeEntry(context.Background(), attendance.AddPartTimeEntryRequest{
		StaffName: "Anand", Location: "Godown", Date: "2024-03-04", Shift: "Morning",
	})
	require.NoError(t, err)

	resp, err := svc.UpdatePartTimeSalary(context.Background(), created.ID, attendance.UpdatePartTimeSalaryRequest{Salary: 500})
	require.NoError(t, err)

	assert.Equal(t, 500, resp.Salary)
	assert.True(t, resp.SalaryOverride)

	stored, _ := partTimeRepo.GetByID(context.Background(), created.ID)
	assert.True(t, stored.SalaryOverride)
}

func TestDeletePartTimeEntry(t *testing.T) {
	t.Parallel()

	svc, _, partTimeRepo := newFixture()

	created, err := svc.AddPartTimeEntry(context.Background(), attendance.AddPartTimeEntryRequest{
		StaffName: "Anand", Location: "Godown", Date: "2024-03-04", Shift: "Morning",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePartTimeEntry(context.Background(), created.ID))
	assert.Empty(t, partTimeRepo.entries)

	err = svc.DeletePartTimeEntry(context.Background(), created.ID)
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}
