package timelog

import "time"

// TimeLog is an append-only record of actual worked time. StartedAt is never
// edited after creation; EndedAt is filled exactly once by a check-out.
type TimeLog struct {
	ID             string
	ShiftID        string
	WorkerID       string
	StartedAt      time.Time
	EndedAt        *time.Time
	StartLatitude  float64
	StartLongitude float64
	StartAccuracyM float64
	CreatedAt      time.Time

	// DTO / Join
	WorkerName      *string
	WorkerAvatarURL *string
	SiteID          *string
	SiteName        *string
	ShiftDate       *time.Time
}

// IsOpen reports whether the session has not been checked out yet.
func (t *TimeLog) IsOpen() bool {
	return t.EndedAt == nil
}
