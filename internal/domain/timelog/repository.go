package timelog

import (
	"context"
	"time"
)

type TimeLogRepository interface {
	// Create appends a new time log row. StartedAt is fixed at creation.
	Create(ctx context.Context, entry TimeLog) (TimeLog, error)

	// GetOpenByShift returns the open (ended_at IS NULL) session for a
	// shift, newest first.
	GetOpenByShift(ctx context.Context, shiftID string) (TimeLog, error)

	// Close fills ended_at exactly once on the given entry.
	Close(ctx context.Context, id string, endedAt time.Time) error

	// ListRange returns entries whose started_at falls in [filter.From,
	// filter.To), joined to shift, site and worker display fields.
	ListRange(ctx context.Context, filter RangeFilter) ([]TimeLog, error)

	// ListStaleOpen returns open sessions whose started_at is before the
	// cutoff. Used by the janitor job for operator follow-up.
	ListStaleOpen(ctx context.Context, cutoff time.Time) ([]TimeLog, error)
}
