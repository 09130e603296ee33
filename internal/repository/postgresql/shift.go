package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/shift"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, site_id, worker_id, date, starts_at, ends_at, status)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newShift.SiteID, newShift.WorkerID, newShift.Date,
		newShift.StartsAt, newShift.EndsAt, newShift.Status,
	).Scan(&newShift.ID, &newShift.CreatedAt, &newShift.UpdatedAt)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return newShift, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.site_id, s.worker_id, s.date, s.starts_at, s.ends_at, s.status,
		       s.created_at, s.updated_at,
		       st.name AS site_name,
		       u.full_name AS worker_name
		FROM shifts s
		LEFT JOIN sites st ON st.id = s.site_id
		LEFT JOIN users u ON u.id = s.worker_id
		WHERE s.id = $1
	`

	var sh shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&sh.ID, &sh.SiteID, &sh.WorkerID, &sh.Date, &sh.StartsAt, &sh.EndsAt, &sh.Status,
		&sh.CreatedAt, &sh.UpdatedAt,
		&sh.SiteName, &sh.WorkerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift by ID: %w", err)
	}

	return sh, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepository) List(ctx context.Context, filter shift.ShiftFilter) ([]shift.Shift, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.SiteID != nil {
		conditions = append(conditions, fmt.Sprintf("s.site_id = $%d", argPos))
		args = append(args, *filter.SiteID)
		argPos++
	}
	if filter.WorkerID != nil {
		conditions = append(conditions, fmt.Sprintf("s.worker_id = $%d", argPos))
		args = append(args, *filter.WorkerID)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("s.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("s.date >= $%d", argPos))
		args = append(args, *filter.DateFrom)
		argPos++
	}
	if filter.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("s.date <= $%d", argPos))
		args = append(args, *filter.DateTo)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM shifts s WHERE %s`, where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count shifts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT s.id, s.site_id, s.worker_id, s.date, s.starts_at, s.ends_at, s.status,
		       s.created_at, s.updated_at,
		       st.name AS site_name,
		       u.full_name AS worker_name
		FROM shifts s
		LEFT JOIN sites st ON st.id = s.site_id
		LEFT JOIN users u ON u.id = s.worker_id
		WHERE %s
		ORDER BY s.date DESC, s.starts_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var sh shift.Shift
		if err := rows.Scan(
			&sh.ID, &sh.SiteID, &sh.WorkerID, &sh.Date, &sh.StartsAt, &sh.EndsAt, &sh.Status,
			&sh.CreatedAt, &sh.UpdatedAt,
			&sh.SiteName, &sh.WorkerName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan shift row: %w", err)
		}
		shifts = append(shifts, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate shift rows: %w", err)
	}

	return shifts, total, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepository) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET site_id = $2, worker_id = $3, date = $4, starts_at = $5, ends_at = $6,
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		s.ID, s.SiteID, s.WorkerID, s.Date, s.StartsAt, s.EndsAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// UpdateStatus implements shift.ShiftRepository.
func (r *shiftRepository) UpdateStatus(ctx context.Context, id string, status shift.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE shifts SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	count, err := r.CountTimeLogs(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shift.ErrShiftHasTimeLogs
	}

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// CountTimeLogs implements shift.ShiftRepository.
func (r *shiftRepository) CountTimeLogs(ctx context.Context, id string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM time_logs WHERE shift_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count time logs for shift: %w", err)
	}

	return count, nil
}
