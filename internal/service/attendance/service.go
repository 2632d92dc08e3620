package attendance

import (
	"context"
	"fmt"

	"github.com/shopstaff/staffpay-backend-go/internal/domain/attendance"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/payroll"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/staff"
	"github.com/shopstaff/staffpay-backend-go/internal/pkg/dateutil"
)

type AttendanceServiceImpl struct {
	staffRepo    staff.StaffRepository
	fullTimeRepo attendance.FullTimeRepository
	partTimeRepo attendance.PartTimeRepository
	rates        payroll.PartTimeRates
}

func NewAttendanceService(
	staffRepo staff.StaffRepository,
	fullTimeRepo attendance.FullTimeRepository,
	partTimeRepo attendance.PartTimeRepository,
	rates payroll.PartTimeRates,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		staffRepo:    staffRepo,
		fullTimeRepo: fullTimeRepo,
		partTimeRepo: partTimeRepo,
		rates:        rates,
	}
}

func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.FullTimeAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.FullTimeAttendanceResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return attendance.FullTimeAttendanceResponse{}, err
	}
	if !member.IsActive {
		return attendance.FullTimeAttendanceResponse{}, staff.ErrStaffInactive
	}
	if member.Type != staff.TypeFullTime {
		return attendance.FullTimeAttendanceResponse{}, attendance.ErrStaffNotRostered
	}

	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return attendance.FullTimeAttendanceResponse{}, fmt.Errorf("invalid date: %w", err)
	}

	status := attendance.Status(req.Status)
	record := attendance.FullTimeAttendance{
		StaffID:         member.ID,
		Date:            date,
		Status:          status,
		AttendanceValue: status.Value(),
		IsSunday:        dateutil.IsSunday(date),
	}

	saved, err := s.fullTimeRepo.Upsert(ctx, record)
	if err != nil {
		return attendance.FullTimeAttendanceResponse{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return attendance.ToFullTimeResponse(saved), nil
}

func (s *AttendanceServiceImpl) BulkMark(ctx context.Context, req attendance.BulkMarkAttendanceRequest) ([]attendance.FullTimeAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}
	isSunday := dateutil.IsSunday(date)

	records := make([]attendance.FullTimeAttendance, 0, len(req.Entries))
	for _, entry := range req.Entries {
		member, err := s.staffRepo.GetByID(ctx, entry.StaffID)
		if err != nil {
			return nil, err
		}
		if !member.IsActive {
			return nil, staff.ErrStaffInactive
		}
		if member.Type != staff.TypeFullTime {
			return nil, attendance.ErrStaffNotRostered
		}

		status := attendance.Status(entry.Status)
		records = append(records, attendance.FullTimeAttendance{
			StaffID:         member.ID,
			Date:            date,
			Status:          status,
			AttendanceValue: status.Value(),
			IsSunday:        isSunday,
		})
	}

	saved, err := s.fullTimeRepo.BulkUpsert(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk upsert attendance: %w", err)
	}

	out := make([]attendance.FullTimeAttendanceResponse, 0, len(saved))
	for _, rec := range saved {
		out = append(out, attendance.ToFullTimeResponse(rec))
	}
	return out, nil
}

func (s *AttendanceServiceImpl) GetDay(ctx context.Context, dateStr string) (attendance.DayAttendanceResponse, error) {
	date, err := dateutil.ParseDate(dateStr)
	if err != nil {
		return attendance.DayAttendanceResponse{}, fmt.Errorf("invalid date: %w", err)
	}

	fullTime, err := s.fullTimeRepo.ListByDate(ctx, date)
	if err != nil {
		return attendance.DayAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	partTime, err := s.partTimeRepo.ListByDate(ctx, date)
	if err != nil {
		return attendance.DayAttendanceResponse{}, fmt.Errorf("failed to list part-time attendance: %w", err)
	}

	resp := attendance.DayAttendanceResponse{
		Date:     dateStr,
		FullTime: make([]attendance.FullTimeAttendanceResponse, 0, len(fullTime)),
		PartTime: make([]attendance.PartTimeAttendanceResponse, 0, len(partTime)),
	}
	for _, rec := range fullTime {
		resp.FullTime = append(resp.FullTime, attendance.ToFullTimeResponse(rec))
	}
	for _, rec := range partTime {
		resp.PartTime = append(resp.PartTime, attendance.ToPartTimeResponse(rec))
	}
	return resp, nil
}

func (s *AttendanceServiceImpl) AddPartTimeEntry(ctx context.Context, req attendance.AddPartTimeEntryRequest) (attendance.PartTimeAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PartTimeAttendanceResponse{}, err
	}

	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return attendance.PartTimeAttendanceResponse{}, fmt.Errorf("invalid date: %w", err)
	}

	salary := s.rates.DailyDefault(dateutil.IsSunday(date))
	override := false
	if req.Salary != nil {
		salary = *req.Salary
		override = true
	}

	entry := attendance.PartTimeAttendance{
		StaffName:      req.StaffName,
		Location:       req.Location,
		Date:           date,
		Status:         attendance.StatusPresent,
		Shift:          attendance.Shift(req.Shift),
		Salary:         salary,
		SalaryOverride: override,
	}

	saved, err := s.partTimeRepo.Create(ctx, entry)
	if err != nil {
		return attendance.PartTimeAttendanceResponse{}, fmt.Errorf("failed to create part-time entry: %w", err)
	}
	return attendance.ToPartTimeResponse(saved), nil
}

func (s *AttendanceServiceImpl) UpdatePartTimeSalary(ctx context.Context, id string, req attendance.UpdatePartTimeSalaryRequest) (attendance.PartTimeAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PartTimeAttendanceResponse{}, err
	}

	entry, err := s.partTimeRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.PartTimeAttendanceResponse{}, err
	}

	entry.Salary = req.Salary
	entry.SalaryOverride = true

	saved, err := s.partTimeRepo.Update(ctx, entry)
	if err != nil {
		return attendance.PartTimeAttendanceResponse{}, fmt.Errorf("failed to update part-time entry: %w", err)
	}
	return attendance.ToPartTimeResponse(saved), nil
}

func (s *AttendanceServiceImpl) DeletePartTimeEntry(ctx context.Context, id string) error {
	if _, err := s.partTimeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.partTimeRepo.Delete(ctx, id)
}
