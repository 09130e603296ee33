package timelog

import (
	"time"

	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/validator"
)

// MaxAccuracyMeters is the worst GPS accuracy accepted for a check-in.
// Fixes beyond this make the distance check meaningless.
const MaxAccuracyMeters = 80

type CheckInRequest struct {
	ShiftID        string  `json:"-"`
	Latitude       float64 `json:"lat"`
	Longitude      float64 `json:"lng"`
	AccuracyMeters float64 `json:"accuracy_m"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "lat",
			Message: "lat must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "lng",
			Message: "lng must be between -180 and 180",
		})
	}

	if r.AccuracyMeters < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "accuracy_m",
			Message: "accuracy_m must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckInResponse struct {
	TimeLogID      string  `json:"time_log_id"`
	ShiftID        string  `json:"shift_id"`
	ShiftStatus    string  `json:"shift_status"`
	StartedAt      string  `json:"started_at"`
	DistanceMeters float64 `json:"distance_meters"`
}

type CheckOutResponse struct {
	TimeLogID   string  `json:"time_log_id"`
	ShiftID     string  `json:"shift_id"`
	ShiftStatus string  `json:"shift_status"`
	StartedAt   string  `json:"started_at"`
	EndedAt     string  `json:"ended_at"`
	Minutes     int     `json:"minutes"`
	Hours       float64 `json:"hours"`
}

// RangeFilter selects time logs whose StartedAt falls in [From, To).
type RangeFilter struct {
	From     time.Time
	To       time.Time
	WorkerID *string
}
