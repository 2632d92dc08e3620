package payroll

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/shopstaff/staffpay-backend-go/internal/domain/advance"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/attendance"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/payroll"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/staff"
)

type PayrollServiceImpl struct {
	calc         *Calculator
	staffRepo    staff.StaffRepository
	fullTimeRepo attendance.FullTimeRepository
	partTimeRepo attendance.PartTimeRepository
	advanceRepo  advance.AdvanceRepository
}

func NewPayrollService(
	calc *Calculator,
	staffRepo staff.StaffRepository,
	fullTimeRepo attendance.FullTimeRepository,
	partTimeRepo attendance.PartTimeRepository,
	advanceRepo advance.AdvanceRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		calc:         calc,
		staffRepo:    staffRepo,
		fullTimeRepo: fullTimeRepo,
		partTimeRepo: partTimeRepo,
		advanceRepo:  advanceRepo,
	}
}

func (s *PayrollServiceImpl) GetSettlement(ctx context.Context, staffID string, year, month0 int) (payroll.SalaryDetailResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return payroll.SalaryDetailResponse{}, err
	}

	detail, err := s.settle(ctx, member, year, month0)
	if err != nil {
		return payroll.SalaryDetailResponse{}, err
	}

	return payroll.ToSalaryDetailResponse(detail, member.Name, string(member.Location)), nil
}

func (s *PayrollServiceImpl) ListSettlements(ctx context.Context, year, month0 int) ([]payroll.SalaryDetailResponse, error) {
	members, err := s.staffRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	out := make([]payroll.SalaryDetailResponse, 0, len(members))
	for _, member := range members {
		if member.Type != staff.TypeFullTime {
			continue
		}
		detail, err := s.settle(ctx, member, year, month0)
		if err != nil {
			return nil, err
		}
		out = append(out, payroll.ToSalaryDetailResponse(detail, member.Name, string(member.Location)))
	}
	return out, nil
}

func (s *PayrollServiceImpl) settle(ctx context.Context, member staff.Staff, year, month0 int) (payroll.SalaryDetail, error) {
	records, err := s.fullTimeRepo.ListByStaffAndMonth(ctx, member.ID, year, month0)
	if err != nil {
		return payroll.SalaryDetail{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	metrics, err := s.calc.AttendanceMetrics(member.ID, records, year, month0)
	if err != nil {
		return payroll.SalaryDetail{}, err
	}

	history, err := s.advanceRepo.ListByStaff(ctx, member.ID)
	if err != nil {
		return payroll.SalaryDetail{}, fmt.Errorf("failed to list advances: %w", err)
	}

	var current *advance.AdvanceDeduction
	adv, err := s.advanceRepo.GetByStaffAndMonth(ctx, member.ID, year, month0)
	switch {
	case err == nil:
		current = &adv
	case errors.Is(err, advance.ErrAdvanceNotFound):
		// carry-forward fallback inside the calculator
	default:
		return payroll.SalaryDetail{}, fmt.Errorf("failed to get advance: %w", err)
	}

	return s.calc.Settlement(member, metrics, current, history, month0, year)
}

func (s *PayrollServiceImpl) GetPartTimeSalary(ctx context.Context, staffName string, year, month0 int) (payroll.PartTimeSalaryResponse, error) {
	records, err := s.partTimeRepo.ListByNameAndMonth(ctx, staffName, year, month0)
	if err != nil {
		return payroll.PartTimeSalaryResponse{}, fmt.Errorf("failed to list part-time attendance: %w", err)
	}
	if len(records) == 0 {
		return payroll.PartTimeSalaryResponse{}, payroll.ErrPartTimeStaffNotFound
	}

	detail, err := s.calc.PartTimeEarnings(staffName, records[0].Location, records, year, month0)
	if err != nil {
		return payroll.PartTimeSalaryResponse{}, err
	}
	return payroll.ToPartTimeSalaryResponse(detail), nil
}

func (s *PayrollServiceImpl) ListPartTimeSalaries(ctx context.Context, year, month0 int) ([]payroll.PartTimeSalaryResponse, error) {
	records, err := s.partTimeRepo.ListByMonth(ctx, year, month0)
	if err != nil {
		return nil, fmt.Errorf("failed to list part-time attendance: %w", err)
	}

	// Part-timers are keyed by name within a month; the location shown is
	// whichever the worker appeared at first.
	locations := make(map[string]string)
	names := make([]string, 0)
	for _, rec := range records {
		if _, seen := locations[rec.StaffName]; !seen {
			locations[rec.StaffName] = rec.Location
			names = append(names, rec.StaffName)
		}
	}
	sort.Strings(names)

	out := make([]payroll.PartTimeSalaryResponse, 0, len(names))
	for _, name := range names {
		detail, err := s.calc.PartTimeEarnings(name, locations[name], records, year, month0)
		if err != nil {
			return nil, err
		}
		out = append(out, payroll.ToPartTimeSalaryResponse(detail))
	}
	return out, nil
}
