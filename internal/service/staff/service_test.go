package staff

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopstaff/staffpay-backend-go/internal/domain/advance"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStaffRepo struct {
	members []staff.Staff
	nextID  int
}

func (f *fakeStaffRepo) Create(_ context.Context, s staff.Staff) (staff.Staff, error) {
	f.nextID++
	s.ID = fmt.Sprintf("staff-%d", f.nextID)
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
	return nil, nil
}

func (f *fakeStaffRepo) Update(_ context.Context, s staff.Staff) (staff.Staff, error) {
	for i, m := range f.members {
		if m.ID == s.ID {
			f.members[i] = s
			return s, nil
		}
	}
	return staff.Staff{}, staff.ErrStaffNotFound
}

func (f *fakeStaffRepo) Deactivate(_ context.Context, id string) error {
	for i, m := range f.members {
		if m.ID == id {
			f.members[i].IsActive = false
			return nil
		}
	}
	return staff.ErrStaffNotFound
}

type fakeOldStaffRepo struct {
	records []staff.OldStaffRecord
	nextID  int
}

func (f *fakeOldStaffRepo) Create(_ context.Context, r staff.OldStaffRecord) (staff.OldStaffRecord, error) {
	f.nextID++
	r.ID = fmt.Sprintf("old-%d", f.nextID)
	f.records = append(f.records, r)
	return r, nil
}

func (f *fakeOldStaffRepo) GetByID(_ context.Context, id string) (staff.OldStaffRecord, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return staff.OldStaffRecord{}, staff.ErrOldRecordNotFound
}

func (f *fakeOldStaffRepo) List(_ context.Context) ([]staff.OldStaffRecord, error) {
	return f.records, nil
}

func (f *fakeOldStaffRepo) Delete(_ context.Context, id string) error {
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return staff.ErrOldRecordNotFound
}

type fakeAdvanceRepo struct {
	lines []advance.AdvanceDeduction
}

func (f *fakeAdvanceRepo) Upsert(_ context.Context, record advance.AdvanceDeduction) (advance.AdvanceDeduction, error) {
	for i, l := range f.lines {
		if l.StaffID == record.StaffID && l.Year == record.Year && l.Month == record.Month {
			f.lines[i] = record
			return record, nil
		}
	}
	f.lines = append(f.lines, record)
	return record, nil
}

func (f *fakeAdvanceRepo) GetByStaffAndMonth(_ context.Context, staffID string, year, month0 int) (advance.AdvanceDeduction, error) {
	for _, l := range f.lines {
		if l.StaffID == staffID && l.Year == year && l.Month == month0 {
			return l, nil
		}
	}
	return advance.AdvanceDeduction{}, advance.ErrAdvanceNotFound
}

func (f *fakeAdvanceRepo) ListByStaff(_ context.Context, staffID string) ([]advance.AdvanceDeduction, error) {
	return nil, nil
}

func (f *fakeAdvanceRepo) ListByMonth(_ context.Context, year, month0 int) ([]advance.AdvanceDeduction, error) {
	return nil, nil
}

func (f *fakeAdvanceRepo) GetLatestByStaff(_ context.Context, staffID string) (advance.AdvanceDeduction, error) {
	var latest advance.AdvanceDeduction
	found := false
	for _, l := range f.lines {
		if l.StaffID != staffID {
			continue
		}
		if !found || l.Year > latest.Year || (l.Year == latest.Year && l.Month > latest.Month) {
			latest = l
			found = true
		}
	}
	if !found {
		return advance.AdvanceDeduction{}, advance.ErrAdvanceNotFound
	}
	return latest, nil
}

func newFixture() (staff.StaffService, *fakeStaffRepo, *fakeOldStaffRepo, *fakeAdvanceRepo) {
	staffRepo := &fakeStaffRepo{}
	oldRepo := &fakeOldStaffRepo{}
	advRepo := &fakeAdvanceRepo{}
	return NewStaffService(staffRepo, oldRepo, advRepo), staffRepo, oldRepo, advRepo
}

func TestCreate_ComputesTotalSalary(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newFixture()

	resp, err := svc.Create(context.Background(), staff.CreateStaffRequest{
		Name:        "Ravi",
		Location:    string(staff.LocationBigShop),
		Type:        string(staff.TypeFullTime),
		BasicSalary: 10000,
		Incentive:   2000,
		HRA:         1500,
		JoinedDate:  "2024-01-15",
	})
	require.NoError(t, err)

	assert.Equal(t, 13500, resp.TotalSalary)
	assert.True(t, resp.IsActive)
}

func TestCreate_RejectsUnknownLocation(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newFixture()

	_, err := svc.Create(context.Background(), staff.CreateStaffRequest{
		Name:       "Ravi",
		Location:   "Warehouse",
		Type:       string(staff.TypeFullTime),
		JoinedDate: "2024-01-15",
	})
	assert.Error(t, err)
}

func TestUpdate_RecomputesTotalSalary(t *testing.T) {
	t.Parallel()

	svc, staffRepo, _, _ := newFixture()
	created, err := staffRepo.Create(context.Background(), staff.Staff{
		Name: "Ravi", Location: staff.LocationBigShop, Type: staff.TypeFullTime,
		BasicSalary: 10000, Incentive: 2000, HRA: 1500, TotalSalary: 13500, IsActive: true,
	})
	require.NoError(t, err)

	basic := 12000
	resp, err := svc.Update(context.Background(), created.ID, staff.UpdateStaffRequest{BasicSalary: &basic})
	require.NoError(t, err)

	assert.Equal(t, 15500, resp.TotalSalary)
	assert.Equal(t, 2000, resp.Incentive)
}

func TestArchive_SnapshotsOutstandingAdvance(t *testing.T) {
	t.Parallel()

	svc, staffRepo, oldRepo, advRepo := newFixture()
	created, err := staffRepo.Create(context.Background(), staff.Staff{
		Name: "Ravi", Location: staff.LocationBigShop, Type: staff.TypeFullTime, IsActive: true,
	})
	require.NoError(t, err)

	_, err = advRepo.Upsert(context.Background(), advance.AdvanceDeduction{
		StaffID: created.ID, Month: 2, Year: 2024, NewAdvance: 2500,
	})
	require.NoError(t, err)

	resp, err := svc.Archive(context.Background(), created.ID, staff.ArchiveStaffRequest{
		Reason: "moved away", LeftDate: "2024-04-10",
	})
	require.NoError(t, err)

	assert.Equal(t, 2500, resp.OutstandingAdvance)
	assert.Equal(t, "moved away", resp.Reason)

	member, err := staffRepo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, member.IsActive)
	require.Len(t, oldRepo.records, 1)
}

func TestArchive_AlreadyArchived(t *testing.T) {
	t.Parallel()

	svc, staffRepo, _, _ := newFixture()
	created, err := staffRepo.Create(context.Background(), staff.Staff{
		Name: "Ravi", Location: staff.LocationBigShop, Type: staff.TypeFullTime, IsActive: false,
	})
	require.NoError(t, err)

	_, err = svc.Archive(context.Background(), created.ID, staff.ArchiveStaffRequest{
		Reason: "left", LeftDate: "2024-04-10",
	})
	assert.ErrorIs(t, err, staff.ErrAlreadyArchived)
}

func TestArchive_NoLedgerHistoryMeansZeroOutstanding(t *testing.T) {
	t.Parallel()

	svc, staffRepo, _, _ := newFixture()
	created, err := staffRepo.Create(context.Background(), staff.Staff{
		Name: "Ravi", Location: staff.LocationBigShop, Type: staff.TypeFullTime, IsActive: true,
	})
	require.NoError(t, err)

	resp, err := svc.Archive(context.Background(), created.ID, staff.ArchiveStaffRequest{
		Reason: "left", LeftDate: "2024-04-10",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.OutstandingAdvance)
}

func TestRejoin_RestoresAdvanceAsOpeningBalance(t *testing.T) {
	t.Parallel()

	svc, staffRepo, oldRepo, advRepo := newFixture()
	created, err := staffRepo.Create(context.Background(), staff.Staff{
		Name: "Ravi", Location: staff.LocationBigShop, Type: staff.TypeFullTime,
		BasicSalary: 10000, Incentive: 2000, HRA: 1500, TotalSalary: 13500, IsActive: true,
	})
	require.NoError(t, err)
	_, err = advRepo.Upsert(context.Background(), advance.AdvanceDeduction{
		StaffID: created.ID, Month: 2, Year: 2024, NewAdvance: 2500,
	})
	require.NoError(t, err)

	archived, err := svc.Archive(context.Background(), created.ID, staff.ArchiveStaffRequest{
		Reason: "moved away", LeftDate: "2024-04-10",
	})
	require.NoError(t, err)

	rejoined, err := svc.Rejoin(context.Background(), archived.ID, staff.RejoinStaffRequest{
		JoinedDate: "2024-07-01",
	})
	require.NoError(t, err)

	assert.NotEqual(t, created.ID, rejoined.ID)
	assert.Equal(t, 13500, rejoined.TotalSalary)
	assert.True(t, rejoined.IsActive)
	assert.Equal(t, "2024-07-01", rejoined.JoinedDate)

	// July (month 6) opens with the balance carried at archive time
	line, err := advRepo.GetByStaffAndMonth(context.Background(), rejoined.ID, 2024, 6)
	require.NoError(t, err)
	assert.Equal(t, 2500, line.OldAdvance)
	assert.Equal(t, 2500, line.NewAdvance)

	assert.Empty(t, oldRepo.records)
}

func TestRejoin_ZeroOutstandingSeedsNothing(t *testing.T) {
	t.Parallel()

	svc, staffRepo, _, advRepo := newFixture()
	created, err := staffRepo.Create(context.Background(), staff.Staff{
		Name: "Ravi", Location: staff.LocationBigShop, Type: staff.TypeFullTime, IsActive: true,
	})
	require.NoError(t, err)

	archived, err := svc.Archive(context.Background(), created.ID, staff.ArchiveStaffRequest{
		Reason: "left", LeftDate: "2024-04-10",
	})
	require.NoError(t, err)

	_, err = svc.Rejoin(context.Background(), archived.ID, staff.RejoinStaffRequest{JoinedDate: "2024-07-01"})
	require.NoError(t, err)

	assert.Empty(t, advRepo.lines)
}
