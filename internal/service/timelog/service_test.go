package timelog

import (
	"testing"

	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/shift"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/site"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/timelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func gateShift(status shift.Status) shift.Shift {
	return shift.Shift{
		ID:       "shift-1",
		SiteID:   "site-1",
		WorkerID: "worker-1",
		Status:   status,
	}
}

func gateSite() site.Site {
	return site.Site{
		ID:           "site-1",
		Name:         "Warehouse North",
		Latitude:     floatPtr(0),
		Longitude:    floatPtr(0),
		RadiusMeters: floatPtr(1000),
	}
}

func gateRequest(lat, lng, accuracy float64) timelog.CheckInRequest {
	return timelog.CheckInRequest{
		ShiftID:        "shift-1",
		Latitude:       lat,
		Longitude:      lng,
		AccuracyMeters: accuracy,
	}
}

func TestEvaluateCheckIn_Admitted(t *testing.T) {
	distance, err := evaluateCheckIn(gateShift(shift.StatusPlanned), gateSite(), "worker-1", gateRequest(0, 0, 10))
	require.NoError(t, err)
	assert.Equal(t, 0.0, distance)
}

func TestEvaluateCheckIn_NotAssigned(t *testing.T) {
	_, err := evaluateCheckIn(gateShift(shift.StatusPlanned), gateSite(), "worker-2", gateRequest(0, 0, 10))
	assert.ErrorIs(t, err, timelog.ErrShiftNotAssigned)
}

func TestEvaluateCheckIn_ShiftAlreadyDone(t *testing.T) {
	// A done shift rejects any attempt, even from a perfect position.
	_, err := evaluateCheckIn(gateShift(shift.StatusDone), gateSite(), "worker-1", gateRequest(0, 0, 10))
	assert.ErrorIs(t, err, timelog.ErrShiftAlreadyDone)
}

func TestEvaluateCheckIn_AccuracyBoundary(t *testing.T) {
	// 80 m is the worst accepted accuracy; 81 m is rejected regardless of position.
	_, err := evaluateCheckIn(gateShift(shift.StatusPlanned), gateSite(), "worker-1", gateRequest(0, 0, 80))
	assert.NoError(t, err)

	_, err = evaluateCheckIn(gateShift(shift.StatusPlanned), gateSite(), "worker-1", gateRequest(0, 0, 81))
	assert.ErrorIs(t, err, timelog.ErrPoorSignal)
}

func TestEvaluateCheckIn_PoorSignalWinsOverMissingGeofence(t *testing.T) {
	// First failing check wins: accuracy is checked before site configuration.
	_, err := evaluateCheckIn(gateShift(shift.StatusPlanned), site.Site{}, "worker-1", gateRequest(0, 0, 200))
	assert.ErrorIs(t, err, timelog.ErrPoorSignal)
}

func TestEvaluateCheckIn_SiteNotConfigured(t *testing.T) {
	unconfigured := gateSite()
	unconfigured.RadiusMeters = nil

	_, err := evaluateCheckIn(gateShift(shift.StatusPlanned), unconfigured, "worker-1", gateRequest(0, 0, 10))
	assert.ErrorIs(t, err, site.ErrSiteNotConfigured)

	_, err = evaluateCheckIn(gateShift(shift.StatusPlanned), site.Site{}, "worker-1", gateRequest(0, 0, 10))
	assert.ErrorIs(t, err, site.ErrSiteNotConfigured)
}

func TestEvaluateCheckIn_GeofenceBoundary(t *testing.T) {
	// ~1000 m east of the site center at the equator, right at the radius.
	_, err := evaluateCheckIn(gateShift(shift.StatusPlanned), gateSite(), "worker-1", gateRequest(0, 0.0089932, 10))
	assert.NoError(t, err)

	// ~2224 m east, clearly outside.
	_, err = evaluateCheckIn(gateShift(shift.StatusPlanned), gateSite(), "worker-1", gateRequest(0, 0.02, 10))
	var geofenceErr *timelog.GeofenceError
	require.ErrorAs(t, err, &geofenceErr)
	assert.Equal(t, 1000.0, geofenceErr.RadiusMeters)
	assert.InDelta(t, 2224, geofenceErr.DistanceMeters, 5)
}

func TestEvaluateCheckIn_InProgressReentry(t *testing.T) {
	// Repeated admitted check-ins while in progress do not error.
	_, err := evaluateCheckIn(gateShift(shift.StatusInProgress), gateSite(), "worker-1", gateRequest(0, 0, 10))
	assert.NoError(t, err)
}

func TestCheckInRequestValidate(t *testing.T) {
	valid := gateRequest(0, 0, 10)
	assert.NoError(t, valid.Validate())

	badLat := gateRequest(91, 0, 10)
	assert.Error(t, badLat.Validate())

	badLng := gateRequest(0, -181, 10)
	assert.Error(t, badLng.Validate())

	negAccuracy := gateRequest(0, 0, -1)
	assert.Error(t, negAccuracy.Validate())

	noShift := gateRequest(0, 0, 10)
	noShift.ShiftID = ""
	assert.Error(t, noShift.Validate())
}
