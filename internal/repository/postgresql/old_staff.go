package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/staff"
	"github.com/shopstaff/staffpay-backend-go/internal/pkg/database"
)

type oldStaffRepositoryImpl struct {
	db *database.DB
}

func NewOldStaffRepository(db *database.DB) staff.OldStaffRepository {
	return &oldStaffRepositoryImpl{db: db}
}

const oldStaffColumns = `id, staff_id, name, location, type, experience, basic_salary, incentive, hra, total_salary, joined_date, left_date, reason, outstanding_advance, created_at`

func scanOldStaff(row pgx.Row) (staff.OldStaffRecord, error) {
	var rec staff.OldStaffRecord
	err := row.Scan(
		&rec.ID,
		&rec.StaffID,
		&rec.Name,
		&rec.Location,
		&rec.Type,
		&rec.Experience,
		&rec.BasicSalary,
		&rec.Incentive,
		&rec.HRA,
		&rec.TotalSalary,
		&rec.JoinedDate,
		&rec.LeftDate,
		&rec.Reason,
		&rec.OutstandingAdvance,
		&rec.CreatedAt,
	)
	return rec, err
}

// Create implements staff.OldStaffRepository.
func (r *oldStaffRepositoryImpl) Create(ctx context.Context, rec staff.OldStaffRecord) (staff.OldStaffRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO old_staff_records (id, staff_id, name, location, type, experience, basic_salary, incentive, hra, total_salary, joined_date, left_date, reason, outstanding_advance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
		RETURNING ` + oldStaffColumns

	result, err := scanOldStaff(q.QueryRow(ctx, query,
		uuid.New().String(),
		rec.StaffID,
		rec.Name,
		rec.Location,
		rec.Type,
		rec.Experience,
		rec.BasicSalary,
		rec.Incentive,
		rec.HRA,
		rec.TotalSalary,
		rec.JoinedDate,
		rec.LeftDate,
		rec.Reason,
		rec.OutstandingAdvance,
	))
	if err != nil {
		return staff.OldStaffRecord{}, fmt.Errorf("failed to create old staff record: %w", err)
	}

	return result, nil
}

// GetByID implements staff.OldStaffRepository.
func (r *oldStaffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.OldStaffRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + oldStaffColumns + ` FROM old_staff_records WHERE id = $1`

	result, err := scanOldStaff(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.OldStaffRecord{}, staff.ErrOldRecordNotFound
		}
		return staff.OldStaffRecord{}, fmt.Errorf("failed to get old staff record: %w", err)
	}

	return result, nil
}

// List implements staff.OldStaffRepository.
func (r *oldStaffRepositoryImpl) List(ctx context.Context) ([]staff.OldStaffRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + oldStaffColumns + ` FROM old_staff_records ORDER BY left_date DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list old staff records: %w", err)
	}
	defer rows.Close()

	var records []staff.OldStaffRecord
	for rows.Next() {
		rec, err := scanOldStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan old staff record: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

// Delete implements staff.OldStaffRepository.
func (r *oldStaffRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM old_staff_records WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete old staff record: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return staff.ErrOldRecordNotFound
	}

	return nil
}
