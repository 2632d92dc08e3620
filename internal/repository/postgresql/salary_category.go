package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/master/salarycategory"
	"github.com/shopstaff/staffpay-backend-go/internal/pkg/database"
)

type salaryCategoryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryCategoryRepository(db *database.DB) salarycategory.SalaryCategoryRepository {
	return &salaryCategoryRepositoryImpl{db: db}
}

const salaryCategoryColumns = `id, name, basic_salary, incentive, hra, total_salary, is_active, created_at, updated_at`

func scanSalaryCategory(row pgx.Row) (salarycategory.SalaryCategory, error) {
	var c salarycategory.SalaryCategory
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.BasicSalary,
		&c.Incentive,
		&c.HRA,
		&c.TotalSalary,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// Create implements salarycategory.SalaryCategoryRepository.
func (r *salaryCategoryRepositoryImpl) Create(ctx context.Context, c salarycategory.SalaryCategory) (salarycategory.SalaryCategory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_categories (id, name, basic_salary, incentive, hra, total_salary, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + salaryCategoryColumns

	result, err := scanSalaryCategory(q.QueryRow(ctx, query,
		uuid.New().String(),
		c.Name,
		c.BasicSalary,
		c.Incentive,
		c.HRA,
		c.TotalSalary,
		c.IsActive,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return salarycategory.SalaryCategory{}, salarycategory.ErrCategoryExists
		}
		return salarycategory.SalaryCategory{}, fmt.Errorf("failed to create salary category: %w", err)
	}

	return result, nil
}

// List implements salarycategory.SalaryCategoryRepository.
func (r *salaryCategoryRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]salarycategory.SalaryCategory, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryCategoryColumns + ` FROM salary_categories`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY total_salary ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary categories: %w", err)
	}
	defer rows.Close()

	var categories []salarycategory.SalaryCategory
	for rows.Next() {
		c, err := scanSalaryCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary category: %w", err)
		}
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return categories, nil
}

// Update implements salarycategory.SalaryCategoryRepository.
func (r *salaryCategoryRepositoryImpl) Update(ctx context.Context, c salarycategory.SalaryCategory) (salarycategory.SalaryCategory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_categories
		SET name = $2, basic_salary = $3, incentive = $4, hra = $5, total_salary = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + salaryCategoryColumns

	result, err := scanSalaryCategory(q.QueryRow(ctx, query,
		c.ID,
		c.Name,
		c.BasicSalary,
		c.Incentive,
		c.HRA,
		c.TotalSalary,
		c.IsActive,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salarycategory.SalaryCategory{}, salarycategory.ErrCategoryNotFound
		}
		return salarycategory.SalaryCategory{}, fmt.Errorf("failed to update salary category: %w", err)
	}

	return result, nil
}

// Deactivate implements salarycategory.SalaryCategoryRepository.
func (r *salaryCategoryRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE salary_categories SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate salary category: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return salarycategory.ErrCategoryNotFound
	}

	return nil
}
