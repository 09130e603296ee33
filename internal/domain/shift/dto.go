package shift

import (
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	SiteID   string  `json:"site_id"`
	WorkerID string  `json:"worker_id"`
	Date     string  `json:"date"`      // YYYY-MM-DD
	StartsAt string  `json:"starts_at"` // RFC3339
	EndsAt   *string `json:"ends_at,omitempty"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_id",
			Message: "site_id is required",
		})
	}
	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.StartsAt) {
		errs = append(errs, validator.ValidationError{
			Field:   "starts_at",
			Message: "starts_at is required",
		})
	} else if _, ok := validator.IsValidDateTime(r.StartsAt); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "starts_at",
			Message: "starts_at must be an ISO8601 timestamp",
		})
	}

	if r.EndsAt != nil {
		if _, ok := validator.IsValidDateTime(*r.EndsAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "ends_at",
				Message: "ends_at must be an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateShiftRequest reassigns or reschedules a shift. Site and worker can
// only change while the shift is still planned.
type UpdateShiftRequest struct {
	ID       string  `json:"-"`
	SiteID   *string `json:"site_id,omitempty"`
	WorkerID *string `json:"worker_id,omitempty"`
	Date     *string `json:"date,omitempty"`
	StartsAt *string `json:"starts_at,omitempty"`
	EndsAt   *string `json:"ends_at,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.StartsAt != nil {
		if _, ok := validator.IsValidDateTime(*r.StartsAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "starts_at",
				Message: "starts_at must be an ISO8601 timestamp",
			})
		}
	}
	if r.EndsAt != nil {
		if _, ok := validator.IsValidDateTime(*r.EndsAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "ends_at",
				Message: "ends_at must be an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID         string  `json:"id"`
	SiteID     string  `json:"site_id"`
	SiteName   *string `json:"site_name,omitempty"`
	WorkerID   string  `json:"worker_id"`
	WorkerName *string `json:"worker_name,omitempty"`
	Date       string  `json:"date"`
	StartsAt   string  `json:"starts_at"`
	EndsAt     *string `json:"ends_at,omitempty"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type ShiftFilter struct {
	SiteID   *string
	WorkerID *string
	Status   *string
	DateFrom *string
	DateTo   *string
	Page     int
	Limit    int
}

type ListShiftResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Shifts     []ShiftResponse `json:"shifts"`
}
