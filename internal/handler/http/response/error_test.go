package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/auth"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/shift"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/site"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/timelog"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/user"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"revoked refresh token", auth.ErrRefreshTokenRevoked, http.StatusUnauthorized},
		{"user not found", user.ErrUserNotFound, http.StatusNotFound},
		{"email exists", user.ErrUserEmailExists, http.StatusConflict},
		{"inactive user", user.ErrUserInactive, http.StatusForbidden},
		{"site not found", site.ErrSiteNotFound, http.StatusNotFound},
		{"site has shifts", site.ErrSiteHasShifts, http.StatusConflict},
		{"site not configured", site.ErrSiteNotConfigured, http.StatusUnprocessableEntity},
		{"shift not found", shift.ErrShiftNotFound, http.StatusNotFound},
		{"shift not planned", shift.ErrShiftNotPlanned, http.StatusConflict},
		{"shift not assigned", timelog.ErrShiftNotAssigned, http.StatusForbidden},
		{"shift already done", timelog.ErrShiftAlreadyDone, http.StatusConflict},
		{"poor signal", timelog.ErrPoorSignal, http.StatusUnprocessableEntity},
		{"not checked in", timelog.ErrNotCheckedIn, http.StatusConflict},
		{"unknown error", fmt.Errorf("database exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandleErrorWrappedErrorStillMapped(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("service layer: %w", shift.ErrShiftNotFound))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleErrorGeofence(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, &timelog.GeofenceError{DistanceMeters: 2224.0, RadiusMeters: 1000.0})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "TOO_FAR", body.Error.Code)
	assert.Equal(t, "2224.0", body.Error.Details["distance_meters"])
	assert.Equal(t, "1000.0", body.Error.Details["radius_meters"])
}

func TestHandleErrorValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "lat", Message: "lat must be between -90 and 90"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "lat must be between -90 and 90", body.Error.Details["lat"])
}
