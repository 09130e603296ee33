package shift

import "time"

// Shift is a scheduled work assignment linking one worker to one site.
type Shift struct {
	ID        string
	SiteID    string
	WorkerID  string
	Date      time.Time // calendar date of the shift
	StartsAt  time.Time // scheduled start, UTC
	EndsAt    *time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	SiteName   *string
	WorkerName *string
}
