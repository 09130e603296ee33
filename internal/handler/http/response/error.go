package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/auth"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/shift"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/site"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/timelog"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/user"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/geocode"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Geofence rejections carry the measured distance
	var geofenceErr *timelog.GeofenceError
	if errors.As(err, &geofenceErr) {
		UnprocessableEntityWithDetails(w, "TOO_FAR", geofenceErr.Error(), map[string]string{
			"distance_meters": fmt.Sprintf("%.1f", geofenceErr.DistanceMeters),
			"radius_meters":   fmt.Sprintf("%.1f", geofenceErr.RadiusMeters),
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is deactivated")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Site domain errors
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "Site not found")
	case errors.Is(err, site.ErrSiteHasShifts):
		Conflict(w, "Site still has shifts and cannot be deleted")
	case errors.Is(err, site.ErrSiteNotConfigured):
		UnprocessableEntity(w, "SITE_NOT_CONFIGURED", "Site has no configured geofence")
	case errors.Is(err, geocode.ErrNoMatch):
		NotFound(w, "No match found for address")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftHasTimeLogs):
		Conflict(w, "Shift has time logs and cannot be deleted")
	case errors.Is(err, shift.ErrShiftNotPlanned):
		Conflict(w, "Shift can only be reassigned while planned")
	case errors.Is(err, shift.ErrInvalidStatusTransition):
		Conflict(w, "Invalid shift status transition")

	// Time log domain errors
	case errors.Is(err, timelog.ErrShiftNotAssigned):
		Forbidden(w, "Shift is not assigned to you")
	case errors.Is(err, timelog.ErrShiftAlreadyDone):
		Conflict(w, "Shift is already done")
	case errors.Is(err, timelog.ErrPoorSignal):
		UnprocessableEntity(w, "POOR_SIGNAL", "Location accuracy is too low to check in")
	case errors.Is(err, timelog.ErrNotCheckedIn):
		Conflict(w, "No open session to check out of")
	case errors.Is(err, timelog.ErrTimeLogNotFound):
		NotFound(w, "Time log not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
