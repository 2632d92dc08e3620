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

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

const staffColumns = `id, name, location, type, experience, basic_salary, incentive, hra, total_salary, joined_date, is_active, created_at, updated_at`

func scanStaff(row pgx.Row) (staff.Staff, error) {
	var s staff.Staff
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Location,
		&s.Type,
		&s.Experience,
		&s.BasicSalary,
		&s.Incentive,
		&s.HRA,
		&s.TotalSalary,
		&s.JoinedDate,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// Create implements staff.StaffRepository.
func (r *staffRepositoryImpl) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff (id, name, location, type, experience, basic_salary, incentive, hra, total_salary, joined_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING ` + staffColumns

	result, err := scanStaff(q.QueryRow(ctx, query,
		uuid.New().String(),
		s.Name,
		s.Location,
		s.Type,
		s.Experience,
		s.BasicSalary,
		s.Incentive,
		s.HRA,
		s.TotalSalary,
		s.JoinedDate,
		s.IsActive,
	))
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to create staff: %w", err)
	}

	return result, nil
}

// GetByID implements staff.StaffRepository.
func (r *staffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`

	result, err := scanStaff(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff: %w", err)
	}

	return result, nil
}

// List implements staff.StaffRepository.
func (r *staffRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var members []staff.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		members = append(members, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// ListByLocation implements staff.StaffRepository.
func (r *staffRepositoryImpl) ListByLocation(ctx context.Context, location staff.Location, activeOnly bool) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff WHERE location = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name ASC`

	rows, err := q.Query(ctx, query, location)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff by location: %w", err)
	}
	defer rows.Close()

	var members []staff.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		members = append(members, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// Update implements staff.StaffRepository.
func (r *staffRepositoryImpl) Update(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE staff
		SET name = $2, location = $3, experience = $4, basic_salary = $5, incentive = $6, hra = $7, total_salary = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + staffColumns

	result, err := scanStaff(q.QueryRow(ctx, query,
		s.ID,
		s.Name,
		s.Location,
		s.Experience,
		s.BasicSalary,
		s.Incentive,
		s.HRA,
		s.TotalSalary,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to update staff: %w", err)
	}

	return result, nil
}

// Deactivate implements staff.StaffRepository.
func (r *staffRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE staff SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate staff: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}
