package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopstaff/staffpay-backend-go/internal/domain/attendance"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/dashboard"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/staff"
	"github.com/shopstaff/staffpay-backend-go/internal/pkg/dateutil"
)

type DashboardServiceImpl struct {
	staffRepo    staff.StaffRepository
	fullTimeRepo attendance.FullTimeRepository
	partTimeRepo attendance.PartTimeRepository
	logger       *slog.Logger
}

func NewDashboardService(
	staffRepo staff.StaffRepository,
	fullTimeRepo attendance.FullTimeRepository,
	partTimeRepo attendance.PartTimeRepository,
	logger *slog.Logger,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		staffRepo:    staffRepo,
		fullTimeRepo: fullTimeRepo,
		partTimeRepo: partTimeRepo,
		logger:       logger,
	}
}

func (s *DashboardServiceImpl) LocationSummary(ctx context.Context, dateStr string, location string) (dashboard.LocationAttendanceSummary, error) {
	if !staff.IsValidLocation(location) {
		return dashboard.LocationAttendanceSummary{}, staff.ErrInvalidLocation
	}

	date, err := dateutil.ParseDate(dateStr)
	if err != nil {
		return dashboard.LocationAttendanceSummary{}, fmt.Errorf("invalid date: %w", err)
	}

	members, err := s.staffRepo.ListByLocation(ctx, staff.Location(location), true)
	if err != nil {
		return dashboard.LocationAttendanceSummary{}, fmt.Errorf("failed to list staff: %w", err)
	}

	fullTime, err := s.fullTimeRepo.ListByDate(ctx, date)
	if err != nil {
		return dashboard.LocationAttendanceSummary{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	partTime, err := s.partTimeRepo.ListByDate(ctx, date)
	if err != nil {
		return dashboard.LocationAttendanceSummary{}, fmt.Errorf("failed to list part-time attendance: %w", err)
	}

	roster := make(map[string]staff.Staff, len(members))
	for _, m := range members {
		roster[m.ID] = m
	}

	summary := dashboard.LocationAttendanceSummary{
		Location:     location,
		Date:         dateStr,
		TotalStaff:   len(members),
		PresentNames: []string{},
		HalfDayNames: []string{},
		AbsentNames:  []string{},
	}

	seen := make(map[string]bool, len(members))
	for _, rec := range fullTime {
		member, ok := roster[rec.StaffID]
		if !ok {
			// could belong to another location, but an ID the whole roster
			// has never seen means a stale record
			if _, err := s.staffRepo.GetByID(ctx, rec.StaffID); err != nil {
				s.logger.WarnContext(ctx, "attendance record references unknown staff, dropped from rollup",
					slog.String("staff_id", rec.StaffID),
					slog.String("date", dateStr),
				)
			}
			continue
		}
		seen[member.ID] = true

		switch rec.Status {
		case attendance.StatusPresent:
			summary.Present++
			summary.TotalPresentValue += 1
			summary.PresentNames = append(summary.PresentNames, member.Name)
		case attendance.StatusHalfDay:
			summary.HalfDay++
			summary.TotalPresentValue += 0.5
			summary.HalfDayNames = append(summary.HalfDayNames, member.Name)
		case attendance.StatusAbsent:
			summary.Absent++
			summary.AbsentNames = append(summary.AbsentNames, member.Name)
		}
	}

	// unmarked roster members count as absent for the day
	for _, m := range members {
		if m.Type == staff.TypeFullTime && !seen[m.ID] {
			summary.Absent++
			summary.AbsentNames = append(summary.AbsentNames, m.Name)
		}
	}

	for _, rec := range partTime {
		if rec.Location != location || rec.Status != attendance.StatusPresent {
			continue
		}
		summary.TotalStaff++
		summary.Present++
		summary.PresentNames = append(summary.PresentNames, fmt.Sprintf("%s (%s)", rec.StaffName, rec.Shift))
		if rec.Shift == attendance.ShiftBoth {
			summary.TotalPresentValue += 1
		} else {
			summary.TotalPresentValue += 0.5
		}
	}

	return summary, nil
}

func (s *DashboardServiceImpl) AllLocationSummaries(ctx context.Context, dateStr string) ([]dashboard.LocationAttendanceSummary, error) {
	locations := []staff.Location{staff.LocationBigShop, staff.LocationSmallShop, staff.LocationGodown}

	out := make([]dashboard.LocationAttendanceSummary, 0, len(locations))
	for _, loc := range locations {
		summary, err := s.LocationSummary(ctx, dateStr, string(loc))
		if err != nil {
			return nil, err
		}
		out = append(out, summary)
	}
	return out, nil
}
