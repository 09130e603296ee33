package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/auth"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/timelog"
)

// StaleSessionAge is how long a session may stay open before the janitor
// flags it for follow-up.
const StaleSessionAge = 24 * time.Hour

type TimeLogJobs struct {
	timeLogRepo      timelog.TimeLogRepository
	refreshTokenRepo auth.RefreshTokenRepository
}

func NewTimeLogJobs(
	timeLogRepo timelog.TimeLogRepository,
	refreshTokenRepo auth.RefreshTokenRepository,
) *TimeLogJobs {
	return &TimeLogJobs{
		timeLogRepo:      timeLogRepo,
		refreshTokenRepo: refreshTokenRepo,
	}
}

func (j *TimeLogJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("flag_stale_time_logs", 1*time.Hour, j.FlagStaleTimeLogs)
	scheduler.AddJob("purge_expired_refresh_tokens", 6*time.Hour, j.PurgeExpiredRefreshTokens)
}

// FlagStaleTimeLogs logs every session open longer than StaleSessionAge.
// Stale sessions are never auto-closed; they surface in the report's
// incomplete bucket and an operator resolves them.
func (j *TimeLogJobs) FlagStaleTimeLogs(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-StaleSessionAge)

	stale, err := j.timeLogRepo.ListStaleOpen(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list stale open sessions: %w", err)
	}

	if len(stale) == 0 {
		return nil
	}

	for _, session := range stale {
		slog.Warn("Cron: Stale open time log",
			"time_log_id", session.ID,
			"shift_id", session.ShiftID,
			"worker_id", session.WorkerID,
			"started_at", session.StartedAt,
			"open_for", time.Since(session.StartedAt).Round(time.Minute),
		)
	}

	slog.Info("Cron: Stale open time logs flagged", "count", len(stale))
	return nil
}

// PurgeExpiredRefreshTokens deletes refresh tokens past their expiry.
func (j *TimeLogJobs) PurgeExpiredRefreshTokens(ctx context.Context) error {
	deleted, err := j.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge expired refresh tokens: %w", err)
	}

	if deleted > 0 {
		slog.Info("Cron: Expired refresh tokens purged", "count", deleted)
	}
	return nil
}
