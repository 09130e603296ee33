package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/timelog"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timeLogRepository struct {
	db *database.DB
}

func NewTimeLogRepository(db *database.DB) timelog.TimeLogRepository {
	return &timeLogRepository{db: db}
}

// Create implements timelog.TimeLogRepository.
func (r *timeLogRepository) Create(ctx context.Context, entry timelog.TimeLog) (timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_logs (id, shift_id, worker_id, started_at, start_latitude, start_longitude, start_accuracy_m)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		entry.ShiftID, entry.WorkerID, entry.StartedAt,
		entry.StartLatitude, entry.StartLongitude, entry.StartAccuracyM,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return timelog.TimeLog{}, fmt.Errorf("failed to create time log: %w", err)
	}

	return entry, nil
}

// GetOpenByShift implements timelog.TimeLogRepository.
func (r *timeLogRepository) GetOpenByShift(ctx context.Context, shiftID string) (timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, shift_id, worker_id, started_at, ended_at,
		       start_latitude, start_longitude, start_accuracy_m, created_at
		FROM time_logs
		WHERE shift_id = $1
		  AND ended_at IS NULL
		ORDER BY started_at DESC
		LIMIT 1
	`

	var t timelog.TimeLog
	err := q.QueryRow(ctx, query, shiftID).Scan(
		&t.ID, &t.ShiftID, &t.WorkerID, &t.StartedAt, &t.EndedAt,
		&t.StartLatitude, &t.StartLongitude, &t.StartAccuracyM, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timelog.TimeLog{}, timelog.ErrNotCheckedIn
		}
		return timelog.TimeLog{}, fmt.Errorf("failed to get open session: %w", err)
	}

	return t, nil
}

// Close implements timelog.TimeLogRepository.
func (r *timeLogRepository) Close(ctx context.Context, id string, endedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	// ended_at is filled exactly once; a second check-out finds no row.
	tag, err := q.Exec(ctx,
		`UPDATE time_logs SET ended_at = $2 WHERE id = $1 AND ended_at IS NULL`,
		id, endedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to close time log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timelog.ErrTimeLogNotFound
	}

	return nil
}

// ListRange implements timelog.TimeLogRepository.
func (r *timeLogRepository) ListRange(ctx context.Context, filter timelog.RangeFilter) ([]timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.shift_id, t.worker_id, t.started_at, t.ended_at,
		       t.start_latitude, t.start_longitude, t.start_accuracy_m, t.created_at,
		       u.full_name AS worker_name,
		       u.avatar_url AS worker_avatar_url,
		       s.site_id, st.name AS site_name, s.date AS shift_date
		FROM time_logs t
		LEFT JOIN users u ON u.id = t.worker_id
		LEFT JOIN shifts s ON s.id = t.shift_id
		LEFT JOIN sites st ON st.id = s.site_id
		WHERE t.started_at >= $1
		  AND t.started_at < $2
	`
	args := []interface{}{filter.From, filter.To}

	if filter.WorkerID != nil {
		query += ` AND t.worker_id = $3`
		args = append(args, *filter.WorkerID)
	}

	query += ` ORDER BY t.started_at ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs: %w", err)
	}
	defer rows.Close()

	var entries []timelog.TimeLog
	for rows.Next() {
		var t timelog.TimeLog
		if err := rows.Scan(
			&t.ID, &t.ShiftID, &t.WorkerID, &t.StartedAt, &t.EndedAt,
			&t.StartLatitude, &t.StartLongitude, &t.StartAccuracyM, &t.CreatedAt,
			&t.WorkerName, &t.WorkerAvatarURL,
			&t.SiteID, &t.SiteName, &t.ShiftDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan time log row: %w", err)
		}
		entries = append(entries, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time log rows: %w", err)
	}

	return entries, nil
}

// ListStaleOpen implements timelog.TimeLogRepository.
func (r *timeLogRepository) ListStaleOpen(ctx context.Context, cutoff time.Time) ([]timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.shift_id, t.worker_id, t.started_at, t.ended_at,
		       t.start_latitude, t.start_longitude, t.start_accuracy_m, t.created_at,
		       u.full_name AS worker_name
		FROM time_logs t
		LEFT JOIN users u ON u.id = t.worker_id
		WHERE t.ended_at IS NULL
		  AND t.started_at < $1
		ORDER BY t.started_at ASC
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale open sessions: %w", err)
	}
	defer rows.Close()

	var entries []timelog.TimeLog
	for rows.Next() {
		var t timelog.TimeLog
		if err := rows.Scan(
			&t.ID, &t.ShiftID, &t.WorkerID, &t.StartedAt, &t.EndedAt,
			&t.StartLatitude, &t.StartLongitude, &t.StartAccuracyM, &t.CreatedAt,
			&t.WorkerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stale session row: %w", err)
		}
		entries = append(entries, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stale session rows: %w", err)
	}

	return entries, nil
}
