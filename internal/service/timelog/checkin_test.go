package timelog

import (
	"context"
	"testing"
	"time"

	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/shift"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/site"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/timelog"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/database"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/sse"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingShiftRepo struct {
	shift.ShiftRepository
	byID         map[string]shift.Shift
	statusWrites []shift.Status
}

func (r *recordingShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	sh, ok := r.byID[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return sh, nil
}

func (r *recordingShiftRepo) UpdateStatus(ctx context.Context, id string, status shift.Status) error {
	r.statusWrites = append(r.statusWrites, status)
	return nil
}

type recordingSiteRepo struct {
	site.SiteRepository
	sites map[string]site.Site
}

func (r *recordingSiteRepo) GetByID(ctx context.Context, id string) (site.Site, error) {
	st, ok := r.sites[id]
	if !ok {
		return site.Site{}, site.ErrSiteNotFound
	}
	return st, nil
}

type recordingTimeLogRepo struct {
	timelog.TimeLogRepository
	created  []timelog.TimeLog
	open     *timelog.TimeLog
	closedID string
}

func (r *recordingTimeLogRepo) Create(ctx context.Context, entry timelog.TimeLog) (timelog.TimeLog, error) {
	entry.ID = "log-1"
	r.created = append(r.created, entry)
	return entry, nil
}

func (r *recordingTimeLogRepo) GetOpenByShift(ctx context.Context, shiftID string) (timelog.TimeLog, error) {
	if r.open == nil {
		return timelog.TimeLog{}, timelog.ErrNotCheckedIn
	}
	return *r.open, nil
}

func (r *recordingTimeLogRepo) Close(ctx context.Context, id string, endedAt time.Time) error {
	r.closedID = id
	return nil
}

type checkInFixture struct {
	shiftRepo   *recordingShiftRepo
	timeLogRepo *recordingTimeLogRepo
	txCount     int
	svc         timelog.TimeLogService
}

func newCheckInFixture(status shift.Status) *checkInFixture {
	f := &checkInFixture{
		shiftRepo: &recordingShiftRepo{byID: map[string]shift.Shift{
			"shift-1": {ID: "shift-1", SiteID: "site-1", WorkerID: "worker-1", Status: status},
		}},
		timeLogRepo: &recordingTimeLogRepo{},
	}
	siteRepo := &recordingSiteRepo{sites: map[string]site.Site{
		"site-1": {
			ID:           "site-1",
			Name:         "Warehouse North",
			Latitude:     floatPtr(0),
			Longitude:    floatPtr(0),
			RadiusMeters: floatPtr(1000),
		},
	}}

	svc := NewTimeLogService(nil, f.shiftRepo, siteRepo, f.timeLogRepo, sse.NewHub()).(*TimeLogServiceImpl)
	svc.runTx = func(ctx context.Context, db *database.DB, fn func(ctx context.Context) error) error {
		f.txCount++
		return fn(ctx)
	}
	f.svc = svc
	return f
}

func workerContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestCheckIn_StartsPlannedShift(t *testing.T) {
	f := newCheckInFixture(shift.StatusPlanned)
	ctx := workerContext(t, "worker-1")

	resp, err := f.svc.CheckIn(ctx, gateRequest(0, 0, 10))

	require.NoError(t, err)
	assert.Equal(t, []shift.Status{shift.StatusInProgress}, f.shiftRepo.statusWrites)
	require.Len(t, f.timeLogRepo.created, 1)
	assert.Equal(t, "worker-1", f.timeLogRepo.created[0].WorkerID)
	assert.Equal(t, 1, f.txCount)
	assert.Equal(t, string(shift.StatusInProgress), resp.ShiftStatus)
}

func TestCheckIn_ReentrySkipsStatusWrite(t *testing.T) {
	f := newCheckInFixture(shift.StatusInProgress)
	ctx := workerContext(t, "worker-1")

	resp, err := f.svc.CheckIn(ctx, gateRequest(0, 0, 10))

	require.NoError(t, err)
	// The shift already runs; only a new session row is written.
	assert.Empty(t, f.shiftRepo.statusWrites)
	assert.Len(t, f.timeLogRepo.created, 1)
	assert.Equal(t, string(shift.StatusInProgress), resp.ShiftStatus)
}

func TestCheckIn_RejectionWritesNothing(t *testing.T) {
	tests := []struct {
		name    string
		req     timelog.CheckInRequest
		wantErr error
	}{
		{"poor signal", gateRequest(0, 0, 81), timelog.ErrPoorSignal},
		{"outside geofence", gateRequest(0.02, 0, 10), &timelog.GeofenceError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCheckInFixture(shift.StatusPlanned)
			ctx := workerContext(t, "worker-1")

			_, err := f.svc.CheckIn(ctx, tt.req)

			require.Error(t, err)
			if gerr, ok := tt.wantErr.(*timelog.GeofenceError); ok {
				assert.ErrorAs(t, err, &gerr)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Empty(t, f.shiftRepo.statusWrites)
			assert.Empty(t, f.timeLogRepo.created)
			assert.Zero(t, f.txCount)
		})
	}
}

func TestCheckIn_NotAssignedWritesNothing(t *testing.T) {
	f := newCheckInFixture(shift.StatusPlanned)
	ctx := workerContext(t, "worker-2")

	_, err := f.svc.CheckIn(ctx, gateRequest(0, 0, 10))

	assert.ErrorIs(t, err, timelog.ErrShiftNotAssigned)
	assert.Empty(t, f.shiftRepo.statusWrites)
	assert.Empty(t, f.timeLogRepo.created)
	assert.Zero(t, f.txCount)
}

func TestCheckOut_ClosesSessionAndFinishesShift(t *testing.T) {
	f := newCheckInFixture(shift.StatusInProgress)
	started := time.Now().UTC().Add(-30 * time.Minute)
	f.timeLogRepo.open = &timelog.TimeLog{
		ID:        "log-1",
		ShiftID:   "shift-1",
		WorkerID:  "worker-1",
		StartedAt: started,
	}
	ctx := workerContext(t, "worker-1")

	resp, err := f.svc.CheckOut(ctx, "shift-1")

	require.NoError(t, err)
	assert.Equal(t, "log-1", f.timeLogRepo.closedID)
	assert.Equal(t, []shift.Status{shift.StatusDone}, f.shiftRepo.statusWrites)
	assert.Equal(t, 1, f.txCount)
	assert.Equal(t, 30, resp.Minutes)
	assert.Equal(t, 0.5, resp.Hours)
	assert.Equal(t, string(shift.StatusDone), resp.ShiftStatus)
}

func TestCheckOut_WithoutOpenSession(t *testing.T) {
	f := newCheckInFixture(shift.StatusInProgress)
	ctx := workerContext(t, "worker-1")

	_, err := f.svc.CheckOut(ctx, "shift-1")

	assert.ErrorIs(t, err, timelog.ErrNotCheckedIn)
	assert.Empty(t, f.shiftRepo.statusWrites)
	assert.Zero(t, f.txCount)
}
