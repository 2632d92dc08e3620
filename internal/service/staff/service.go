package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopstaff/staffpay-backend-go/internal/domain/advance"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/staff"
	"github.com/shopstaff/staffpay-backend-go/internal/pkg/dateutil"
)

type StaffServiceImpl struct {
	staffRepo    staff.StaffRepository
	oldStaffRepo staff.OldStaffRepository
	advanceRepo  advance.AdvanceRepository
}

func NewStaffService(
	staffRepo staff.StaffRepository,
	oldStaffRepo staff.OldStaffRepository,
	advanceRepo advance.AdvanceRepository,
) staff.StaffService {
	return &StaffServiceImpl{
		staffRepo:    staffRepo,
		oldStaffRepo: oldStaffRepo,
		advanceRepo:  advanceRepo,
	}
}

func (s *StaffServiceImpl) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	joined, err := dateutil.ParseDate(req.JoinedDate)
	if err != nil {
		return staff.StaffResponse{}, fmt.Errorf("invalid joined date: %w", err)
	}

	member := staff.Staff{
		Name:        req.Name,
		Location:    staff.Location(req.Location),
		Type:        staff.StaffType(req.Type),
		Experience:  req.Experience,
		BasicSalary: req.BasicSalary,
		Incentive:   req.Incentive,
		HRA:         req.HRA,
		JoinedDate:  joined,
		IsActive:    true,
	}
	member.RecomputeTotal()

	created, err := s.staffRepo.Create(ctx, member)
	if err != nil {
		return staff.StaffResponse{}, fmt.Errorf("failed to create staff: %w", err)
	}
	return staff.ToStaffResponse(created), nil
}

func (s *StaffServiceImpl) Get(ctx context.Context, id string) (staff.StaffResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return staff.StaffResponse{}, err
	}
	return staff.ToStaffResponse(member), nil
}

func (s *StaffServiceImpl) List(ctx context.Context, activeOnly bool) ([]staff.StaffResponse, error) {
	members, err := s.staffRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	out := make([]staff.StaffResponse, 0, len(members))
	for _, m := range members {
		out = append(out, staff.ToStaffResponse(m))
	}
	return out, nil
}

func (s *StaffServiceImpl) Update(ctx context.Context, id string, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Location != nil {
		member.Location = staff.Location(*req.Location)
	}
	if req.Experience != nil {
		member.Experience = *req.Experience
	}
	if req.BasicSalary != nil {
		member.BasicSalary = *req.BasicSalary
	}
	if req.Incentive != nil {
		member.Incentive = *req.Incentive
	}
	if req.HRA != nil {
		member.HRA = *req.HRA
	}
	member.RecomputeTotal()

	updated, err := s.staffRepo.Update(ctx, member)
	if err != nil {
		return staff.StaffResponse{}, fmt.Errorf("failed to update staff: %w", err)
	}
	return staff.ToStaffResponse(updated), nil
}

func (s *StaffServiceImpl) Archive(ctx context.Context, id string, req staff.ArchiveStaffRequest) (staff.OldStaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.OldStaffResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return staff.OldStaffResponse{}, err
	}
	if !member.IsActive {
		return staff.OldStaffResponse{}, staff.ErrAlreadyArchived
	}

	leftDate, err := dateutil.ParseDate(req.LeftDate)
	if err != nil {
		return staff.OldStaffResponse{}, fmt.Errorf("invalid left date: %w", err)
	}

	outstanding := 0
	latest, err := s.advanceRepo.GetLatestByStaff(ctx, member.ID)
	switch {
	case err == nil:
		outstanding = latest.NewAdvance
	case errors.Is(err, advance.ErrAdvanceNotFound):
		// no ledger history, nothing owed
	default:
		return staff.OldStaffResponse{}, fmt.Errorf("failed to get latest advance: %w", err)
	}

	record, err := s.oldStaffRepo.Create(ctx, member.Archive(req.Reason, outstanding, leftDate))
	if err != nil {
		return staff.OldStaffResponse{}, fmt.Errorf("failed to archive staff: %w", err)
	}

	if err := s.staffRepo.Deactivate(ctx, member.ID); err != nil {
		return staff.OldStaffResponse{}, fmt.Errorf("failed to deactivate staff: %w", err)
	}

	return staff.ToOldStaffResponse(record), nil
}

func (s *StaffServiceImpl) Rejoin(ctx context.Context, oldRecordID string, req staff.RejoinStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	record, err := s.oldStaffRepo.GetByID(ctx, oldRecordID)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	joinDate, err := dateutil.ParseDate(req.JoinedDate)
	if err != nil {
		return staff.StaffResponse{}, fmt.Errorf("invalid joined date: %w", err)
	}

	member, outstanding := record.Rejoin(joinDate)
	created, err := s.staffRepo.Create(ctx, member)
	if err != nil {
		return staff.StaffResponse{}, fmt.Errorf("failed to recreate staff: %w", err)
	}

	// The balance carried at archive time becomes the opening balance of the
	// rejoin month.
	if outstanding > 0 {
		line := advance.AdvanceDeduction{
			StaffID:    created.ID,
			Month:      int(joinDate.Month()) - 1,
			Year:       joinDate.Year(),
			OldAdvance: outstanding,
			Notes:      "carried over on rejoin",
		}
		line.RecomputeClosing()
		if _, err := s.advanceRepo.Upsert(ctx, line); err != nil {
			return staff.StaffResponse{}, fmt.Errorf("failed to seed advance on rejoin: %w", err)
		}
	}

	if err := s.oldStaffRepo.Delete(ctx, record.ID); err != nil {
		return staff.StaffResponse{}, fmt.Errorf("failed to remove archived record: %w", err)
	}

	return staff.ToStaffResponse(created), nil
}

func (s *StaffServiceImpl) ListOldRecords(ctx context.Context) ([]staff.OldStaffResponse, error) {
	records, err := s.oldStaffRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived staff: %w", err)
	}

	out := make([]staff.OldStaffResponse, 0, len(records))
	for _, r := range records {
		out = append(out, staff.ToOldStaffResponse(r))
	}
	return out, nil
}
