package timelog

import (
	"errors"
	"fmt"
)

var (
	ErrShiftNotAssigned = errors.New("shift is not assigned to this worker")
	ErrShiftAlreadyDone = errors.New("shift is already done")
	ErrPoorSignal       = errors.New("gps accuracy is too poor for a reliable position")
	ErrNotCheckedIn     = errors.New("no open session for this shift")
	ErrTimeLogNotFound  = errors.New("time log not found")
)

// GeofenceError is returned when a reported position falls outside the
// site's allowed radius. The measured values are surfaced so the client can
// tell the worker exactly how far off they are.
type GeofenceError struct {
	DistanceMeters float64
	RadiusMeters   float64
}

func (e *GeofenceError) Error() string {
	return fmt.Sprintf("position is %.0f m from the site, allowed radius is %.0f m",
		e.DistanceMeters, e.RadiusMeters)
}
