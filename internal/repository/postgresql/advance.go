package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/advance"
	"github.com/shopstaff/staffpay-backend-go/internal/pkg/database"
)

type advanceRepositoryImpl struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepositoryImpl{db: db}
}

const advanceColumns = `id, staff_id, month, year, old_advance, current_advance, deduction, new_advance, notes, created_at, updated_at`

func scanAdvance(row pgx.Row) (advance.AdvanceDeduction, error) {
	var a advance.AdvanceDeduction
	err := row.Scan(
		&a.ID,
		&a.StaffID,
		&a.Month,
		&a.Year,
		&a.OldAdvance,
		&a.CurrentAdvance,
		&a.Deduction,
		&a.NewAdvance,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

// Upsert implements advance.AdvanceRepository. One ledger line exists per
// (staff, month, year); writing again replaces the figures.
func (r *advanceRepositoryImpl) Upsert(ctx context.Context, record advance.AdvanceDeduction) (advance.AdvanceDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advance_deductions (id, staff_id, month, year, old_advance, current_advance, deduction, new_advance, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		ON CONFLICT (staff_id, month, year)
		DO UPDATE SET old_advance = EXCLUDED.old_advance, current_advance = EXCLUDED.current_advance, deduction = EXCLUDED.deduction, new_advance = EXCLUDED.new_advance, notes = EXCLUDED.notes, updated_at = NOW()
		RETURNING ` + advanceColumns

	result, err := scanAdvance(q.QueryRow(ctx, query,
		uuid.New().String(),
		record.StaffID,
		record.Month,
		record.Year,
		record.OldAdvance,
		record.CurrentAdvance,
		record.Deduction,
		record.NewAdvance,
		record.Notes,
	))
	if err != nil {
		return advance.AdvanceDeduction{}, fmt.Errorf("failed to upsert advance: %w", err)
	}

	return result, nil
}

// GetByStaffAndMonth implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) GetByStaffAndMonth(ctx context.Context, staffID string, year, month0 int) (advance.AdvanceDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + advanceColumns + ` FROM advance_deductions WHERE staff_id = $1 AND year = $2 AND month = $3`

	result, err := scanAdvance(q.QueryRow(ctx, query, staffID, year, month0))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return advance.AdvanceDeduction{}, advance.ErrAdvanceNotFound
		}
		return advance.AdvanceDeduction{}, fmt.Errorf("failed to get advance: %w", err)
	}

	return result, nil
}

// ListByStaff implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) ListByStaff(ctx context.Context, staffID string) ([]advance.AdvanceDeduction, error) {
	query := `SELECT ` + advanceColumns + ` FROM advance_deductions WHERE staff_id = $1 ORDER BY year ASC, month ASC`
	return r.list(ctx, query, staffID)
}

// ListByMonth implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) ListByMonth(ctx context.Context, year, month0 int) ([]advance.AdvanceDeduction, error) {
	query := `SELECT ` + advanceColumns + ` FROM advance_deductions WHERE year = $1 AND month = $2 ORDER BY staff_id`
	return r.list(ctx, query, year, month0)
}

// GetLatestByStaff implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) GetLatestByStaff(ctx context.Context, staffID string) (advance.AdvanceDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + advanceColumns + ` FROM advance_deductions WHERE staff_id = $1 ORDER BY year DESC, month DESC LIMIT 1`

	result, err := scanAdvance(q.QueryRow(ctx, query, staffID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return advance.AdvanceDeduction{}, advance.ErrAdvanceNotFound
		}
		return advance.AdvanceDeduction{}, fmt.Errorf("failed to get latest advance: %w", err)
	}

	return result, nil
}

func (r *advanceRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]advance.AdvanceDeduction, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	var records []advance.AdvanceDeduction
	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		records = append(records, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}
