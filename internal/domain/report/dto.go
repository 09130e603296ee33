package report

import (
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/validator"
)

type TimeLogReportRequest struct {
	From     string  `json:"from"` // YYYY-MM-DD, inclusive
	To       string  `json:"to"`   // YYYY-MM-DD, inclusive
	WorkerID *string `json:"worker_id,omitempty"`
}

func (r *TimeLogReportRequest) Validate() error {
	var errs validator.ValidationErrors

	fromDate, fromOK := validator.IsValidDate(r.From)
	if validator.IsEmpty(r.From) {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from is required",
		})
	} else if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}

	toDate, toOK := validator.IsValidDate(r.To)
	if validator.IsEmpty(r.To) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to is required",
		})
	} else if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}

	if fromOK && toOK && toDate.Before(fromDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must not be before from",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerSummary struct {
	WorkerID   string  `json:"worker_id"`
	WorkerName string  `json:"worker_name"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
	Minutes    int     `json:"minutes"`
	Hours      float64 `json:"hours"`
}

type ReportRow struct {
	TimeLogID  string  `json:"time_log_id"`
	ShiftID    string  `json:"shift_id"`
	SiteID     *string `json:"site_id,omitempty"`
	SiteName   *string `json:"site_name,omitempty"`
	WorkerID   string  `json:"worker_id"`
	WorkerName string  `json:"worker_name"`
	StartedAt  string  `json:"started_at"`
	EndedAt    string  `json:"ended_at"`
	Minutes    int     `json:"minutes"`
}

// IncompleteSession is a time log with a start but no end yet, listed for
// operational follow-up and excluded from all totals.
type IncompleteSession struct {
	TimeLogID  string `json:"time_log_id"`
	ShiftID    string `json:"shift_id"`
	WorkerID   string `json:"worker_id"`
	WorkerName string `json:"worker_name"`
	StartedAt  string `json:"started_at"`
}

type TimeLogReport struct {
	PeriodFrom   string              `json:"period_from"`
	PeriodTo     string              `json:"period_to"`
	GeneratedAt  string              `json:"generated_at"`
	TotalMinutes int                 `json:"total_minutes"`
	TotalHours   float64             `json:"total_hours"`
	Workers      []WorkerSummary     `json:"workers"`
	Rows         []ReportRow         `json:"rows"`
	Incomplete   []IncompleteSession `json:"incomplete"`
}
