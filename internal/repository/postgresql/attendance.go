package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopstaff/staffpay-backend-go/internal/domain/attendance"
	"github.com/shopstaff/staffpay-backend-go/internal/pkg/database"
)

// monthBounds returns the [first, next-first) date range of a 0-indexed month.
func monthBounds(year, month0 int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

type fullTimeAttendanceRepositoryImpl struct {
	db *database.DB
}

func NewFullTimeAttendanceRepository(db *database.DB) attendance.FullTimeRepository {
	return &fullTimeAttendanceRepositoryImpl{db: db}
}

const fullTimeColumns = `id, staff_id, date, status, attendance_value, is_sunday, created_at, updated_at`

func scanFullTime(row pgx.Row) (attendance.FullTimeAttendance, error) {
	var rec attendance.FullTimeAttendance
	err := row.Scan(
		&rec.ID,
		&rec.StaffID,
		&rec.Date,
		&rec.Status,
		&rec.AttendanceValue,
		&rec.IsSunday,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	return rec, err
}

// Upsert implements attendance.FullTimeRepository.
func (r *fullTimeAttendanceRepositoryImpl) Upsert(ctx context.Context, record attendance.FullTimeAttendance) (attendance.FullTimeAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO full_time_attendance (id, staff_id, date, status, attendance_value, is_sunday, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (staff_id, date)
		DO UPDATE SET status = EXCLUDED.status, attendance_value = EXCLUDED.attendance_value, is_sunday = EXCLUDED.is_sunday, updated_at = NOW()
		RETURNING ` + fullTimeColumns

	result, err := scanFullTime(q.QueryRow(ctx, query,
		uuid.New().String(),
		record.StaffID,
		record.Date,
		record.Status,
		record.AttendanceValue,
		record.IsSunday,
	))
	if err != nil {
		return attendance.FullTimeAttendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return result, nil
}

// BulkUpsert implements attendance.FullTimeRepository.
func (r *fullTimeAttendanceRepositoryImpl) BulkUpsert(ctx context.Context, records []attendance.FullTimeAttendance) ([]attendance.FullTimeAttendance, error) {
	out := make([]attendance.FullTimeAttendance, 0, len(records))

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, record := range records {
			saved, err := r.Upsert(txCtx, record)
			if err != nil {
				return err
			}
			out = append(out, saved)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// GetByStaffAndDate implements attendance.FullTimeRepository.
func (r *fullTimeAttendanceRepositoryImpl) GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (attendance.FullTimeAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + fullTimeColumns + ` FROM full_time_attendance WHERE staff_id = $1 AND date = $2`

	result, err := scanFullTime(q.QueryRow(ctx, query, staffID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.FullTimeAttendance{}, attendance.ErrRecordNotFound
		}
		return attendance.FullTimeAttendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return result, nil
}

// ListByDate implements attendance.FullTimeRepository.
func (r *fullTimeAttendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.FullTimeAttendance, error) {
	query := `SELECT ` + fullTimeColumns + ` FROM full_time_attendance WHERE date = $1 ORDER BY staff_id`
	return r.list(ctx, query, date)
}

// ListByStaffAndMonth implements attendance.FullTimeRepository.
func (r *fullTimeAttendanceRepositoryImpl) ListByStaffAndMonth(ctx context.Context, staffID string, year, month0 int) ([]attendance.FullTimeAttendance, error) {
	start, end := monthBounds(year, month0)
	query := `SELECT ` + fullTimeColumns + ` FROM full_time_attendance WHERE staff_id = $1 AND date >= $2 AND date < $3 ORDER BY date ASC`
	return r.list(ctx, query, staffID, start, end)
}

// ListByMonth implements attendance.FullTimeRepository.
func (r *fullTimeAttendanceRepositoryImpl) ListByMonth(ctx context.Context, year, month0 int) ([]attendance.FullTimeAttendance, error) {
	start, end := monthBounds(year, month0)
	query := `SELECT ` + fullTimeColumns + ` FROM full_time_attendance WHERE date >= $1 AND date < $2 ORDER BY date ASC, staff_id`
	return r.list(ctx, query, start, end)
}

func (r *fullTimeAttendanceRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]attendance.FullTimeAttendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.FullTimeAttendance
	for rows.Next() {
		rec, err := scanFullTime(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

type partTimeAttendanceRepositoryImpl struct {
	db *database.DB
}

func NewPartTimeAttendanceRepository(db *database.DB) attendance.PartTimeRepository {
	return &partTimeAttendanceRepositoryImpl{db: db}
}

const partTimeColumns = `id, staff_name, location, date, status, shift, salary, salary_override, created_at, updated_at`

func scanPartTime(row pgx.Row) (attendance.PartTimeAttendance, error) {
	var rec attendance.PartTimeAttendance
	err := row.Scan(
		&rec.ID,
		&rec.StaffName,
		&rec.Location,
		&rec.Date,
		&rec.Status,
		&rec.Shift,
		&rec.Salary,
		&rec.SalaryOverride,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	return rec, err
}

// Create implements attendance.PartTimeRepository.
func (r *partTimeAttendanceRepositoryImpl) Create(ctx context.Context, entry attendance.PartTimeAttendance) (attendance.PartTimeAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO part_time_attendance (id, staff_name, location, date, status, shift, salary, salary_override, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + partTimeColumns

	result, err := scanPartTime(q.QueryRow(ctx, query,
		uuid.New().String(),
		entry.StaffName,
		entry.Location,
		entry.Date,
		entry.Status,
		entry.Shift,
		entry.Salary,
		entry.SalaryOverride,
	))
	if err != nil {
		return attendance.PartTimeAttendance{}, fmt.Errorf("failed to create part-time entry: %w", err)
	}

	return result, nil
}

// GetByID implements attendance.PartTimeRepository.
func (r *partTimeAttendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.PartTimeAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + partTimeColumns + ` FROM part_time_attendance WHERE id = $1`

	result, err := scanPartTime(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.PartTimeAttendance{}, attendance.ErrRecordNotFound
		}
		return attendance.PartTimeAttendance{}, fmt.Errorf("failed to get part-time entry: %w", err)
	}

	return result, nil
}

// Update implements attendance.PartTimeRepository.
func (r *partTimeAttendanceRepositoryImpl) Update(ctx context.Context, entry attendance.PartTimeAttendance) (attendance.PartTimeAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE part_time_attendance
		SET staff_name = $2, location = $3, status = $4, shift = $5, salary = $6, salary_override = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + partTimeColumns

	result, err := scanPartTime(q.QueryRow(ctx, query,
		entry.ID,
		entry.StaffName,
		entry.Location,
		entry.Status,
		entry.Shift,
		entry.Salary,
		entry.SalaryOverride,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.PartTimeAttendance{}, attendance.ErrRecordNotFound
		}
		return attendance.PartTimeAttendance{}, fmt.Errorf("failed to update part-time entry: %w", err)
	}

	return result, nil
}

// Delete implements attendance.PartTimeRepository.
func (r *partTimeAttendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM part_time_attendance WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete part-time entry: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// ListByDate implements attendance.PartTimeRepository.
func (r *partTimeAttendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.PartTimeAttendance, error) {
	query := `SELECT ` + partTimeColumns + ` FROM part_time_attendance WHERE date = $1 ORDER BY staff_name`
	return r.list(ctx, query, date)
}

// ListByMonth implements attendance.PartTimeRepository.
func (r *partTimeAttendanceRepositoryImpl) ListByMonth(ctx context.Context, year, month0 int) ([]attendance.PartTimeAttendance, error) {
	start, end := monthBounds(year, month0)
	query := `SELECT ` + partTimeColumns + ` FROM part_time_attendance WHERE date >= $1 AND date < $2 ORDER BY date ASC, staff_name`
	return r.list(ctx, query, start, end)
}

// ListByNameAndMonth implements attendance.PartTimeRepository.
func (r *partTimeAttendanceRepositoryImpl) ListByNameAndMonth(ctx context.Context, staffName string, year, month0 int) ([]attendance.PartTimeAttendance, error) {
	start, end := monthBounds(year, month0)
	query := `SELECT ` + partTimeColumns + ` FROM part_time_attendance WHERE staff_name = $1 AND date >= $2 AND date < $3 ORDER BY date ASC`
	return r.list(ctx, query, staffName, start, end)
}

func (r *partTimeAttendanceRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]attendance.PartTimeAttendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list part-time entries: %w", err)
	}
	defer rows.Close()

	var records []attendance.PartTimeAttendance
	for rows.Next() {
		rec, err := scanPartTime(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan part-time entry: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}
