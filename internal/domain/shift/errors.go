package shift

import "errors"

var (
	ErrShiftNotFound           = errors.New("shift not found")
	ErrShiftHasTimeLogs        = errors.New("shift has time logs and cannot be deleted")
	ErrShiftNotPlanned         = errors.New("shift can only be reassigned while planned")
	ErrInvalidStatusTransition = errors.New("invalid shift status transition")
)
