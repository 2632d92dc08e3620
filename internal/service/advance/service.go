package advance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopstaff/staffpay-backend-go/internal/domain/advance"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/staff"
	"github.com/shopstaff/staffpay-backend-go/internal/pkg/dateutil"
)

type AdvanceServiceImpl struct {
	advanceRepo advance.AdvanceRepository
	staffRepo   staff.StaffRepository
	logger      *slog.Logger
}

func NewAdvanceService(
	advanceRepo advance.AdvanceRepository,
	staffRepo staff.StaffRepository,
	logger *slog.Logger,
) advance.AdvanceService {
	return &AdvanceServiceImpl{
		advanceRepo: advanceRepo,
		staffRepo:   staffRepo,
		logger:      logger,
	}
}

func (s *AdvanceServiceImpl) Upsert(ctx context.Context, staffID string, req advance.UpsertAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	line, err := s.advanceRepo.GetByStaffAndMonth(ctx, member.ID, req.Year, req.Month)
	switch {
	case err == nil:
		// editing the existing line
	case errors.Is(err, advance.ErrAdvanceNotFound):
		line = advance.AdvanceDeduction{
			StaffID: member.ID,
			Month:   req.Month,
			Year:    req.Year,
		}
		// a fresh line opens with last month's closing balance unless the
		// request sets the opening explicitly
		if req.OldAdvance == nil {
			line.OldAdvance, err = s.carryForward(ctx, member.ID, req.Month, req.Year)
			if err != nil {
				return advance.AdvanceResponse{}, err
			}
		}
	default:
		return advance.AdvanceResponse{}, fmt.Errorf("failed to get advance: %w", err)
	}

	if req.OldAdvance != nil {
		line.OldAdvance = *req.OldAdvance
	}
	if req.CurrentAdvance != nil {
		line.CurrentAdvance = *req.CurrentAdvance
	}
	if req.Deduction != nil {
		line.Deduction = *req.Deduction
	}
	if req.Notes != "" {
		line.Notes = req.Notes
	}
	line.RecomputeClosing()

	saved, err := s.advanceRepo.Upsert(ctx, line)
	if err != nil {
		return advance.AdvanceResponse{}, fmt.Errorf("failed to upsert advance: %w", err)
	}
	return advance.ToAdvanceResponse(saved), nil
}

func (s *AdvanceServiceImpl) Get(ctx context.Context, staffID string, year, month0 int) (advance.AdvanceResponse, error) {
	if month0 < 0 || month0 > 11 {
		return advance.AdvanceResponse{}, advance.ErrInvalidMonth
	}

	line, err := s.advanceRepo.GetByStaffAndMonth(ctx, staffID, year, month0)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	return advance.ToAdvanceResponse(line), nil
}

func (s *AdvanceServiceImpl) ListMonth(ctx context.Context, year, month0 int) ([]advance.AdvanceResponse, error) {
	if month0 < 0 || month0 > 11 {
		return nil, advance.ErrInvalidMonth
	}

	lines, err := s.advanceRepo.ListByMonth(ctx, year, month0)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}

	out := make([]advance.AdvanceResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, advance.ToAdvanceResponse(line))
	}
	return out, nil
}

func (s *AdvanceServiceImpl) EnsureMonthOpened(ctx context.Context, year, month0 int) (int, error) {
	if month0 < 0 || month0 > 11 {
		return 0, advance.ErrInvalidMonth
	}

	members, err := s.staffRepo.List(ctx, true)
	if err != nil {
		return 0, fmt.Errorf("failed to list staff: %w", err)
	}

	created := 0
	for _, member := range members {
		if member.Type != staff.TypeFullTime {
			continue
		}

		_, err := s.advanceRepo.GetByStaffAndMonth(ctx, member.ID, year, month0)
		if err == nil {
			continue // already opened
		}
		if !errors.Is(err, advance.ErrAdvanceNotFound) {
			return created, fmt.Errorf("failed to get advance: %w", err)
		}

		opening, err := s.carryForward(ctx, member.ID, month0, year)
		if err != nil {
			return created, err
		}

		line := advance.AdvanceDeduction{
			StaffID:    member.ID,
			Month:      month0,
			Year:       year,
			OldAdvance: opening,
		}
		line.RecomputeClosing()

		if _, err := s.advanceRepo.Upsert(ctx, line); err != nil {
			return created, fmt.Errorf("failed to open advance month: %w", err)
		}
		created++
	}

	s.logger.InfoContext(ctx, "advance month opened",
		slog.Int("year", year),
		slog.Int("month", month0),
		slog.Int("lines_created", created),
	)
	return created, nil
}

// carryForward resolves the opening balance for (month0, year): the closing
// balance of the previous month's line, or 0 when the staff member has none.
func (s *AdvanceServiceImpl) carryForward(ctx context.Context, staffID string, month0, year int) (int, error) {
	prevMonth, prevYear := dateutil.PrevMonth(month0, year)

	prev, err := s.advanceRepo.GetByStaffAndMonth(ctx, staffID, prevYear, prevMonth)
	switch {
	case err == nil:
		return prev.NewAdvance, nil
	case errors.Is(err, advance.ErrAdvanceNotFound):
		return 0, nil
	default:
		return 0, fmt.Errorf("failed to get previous advance: %w", err)
	}
}
