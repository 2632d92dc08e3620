package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/master/location"
	"github.com/shopstaff/staffpay-backend-go/internal/pkg/database"
)

type locationRepositoryImpl struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) location.LocationRepository {
	return &locationRepositoryImpl{db: db}
}

const locationColumns = `id, name, display_name, is_active, created_at, updated_at`

func scanLocation(row pgx.Row) (location.Location, error) {
	var l location.Location
	err := row.Scan(
		&l.ID,
		&l.Name,
		&l.DisplayName,
		&l.IsActive,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

// Create implements location.LocationRepository.
func (r *locationRepositoryImpl) Create(ctx context.Context, l location.Location) (location.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO locations (id, name, display_name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + locationColumns

	result, err := scanLocation(q.QueryRow(ctx, query,
		uuid.New().String(),
		l.Name,
		l.DisplayName,
		l.IsActive,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return location.Location{}, location.ErrLocationExists
		}
		return location.Location{}, fmt.Errorf("failed to create location: %w", err)
	}

	return result, nil
}

// List implements location.LocationRepository.
func (r *locationRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]location.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + locationColumns + ` FROM locations`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	var locations []location.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return locations, nil
}

// Update implements location.LocationRepository.
func (r *locationRepositoryImpl) Update(ctx context.Context, l location.Location) (location.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE locations
		SET display_name = $2, is_active = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + locationColumns

	result, err := scanLocation(q.QueryRow(ctx, query, l.ID, l.DisplayName, l.IsActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return location.Location{}, location.ErrLocationNotFound
		}
		return location.Location{}, fmt.Errorf("failed to update location: %w", err)
	}

	return result, nil
}

// Deactivate implements location.LocationRepository.
func (r *locationRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE locations SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate location: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return location.ErrLocationNotFound
	}

	return nil
}
