package shift

import (
	"context"
	"testing"
	"time"

	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/shift"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/site"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/user"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubShiftRepo struct {
	shift.ShiftRepository
	byID    map[string]shift.Shift
	created *shift.Shift
	updated *shift.Shift
}

func (r *stubShiftRepo) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	newShift.ID = "shift-1"
	r.created = &newShift
	return newShift, nil
}

func (r *stubShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	sh, ok := r.byID[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return sh, nil
}

func (r *stubShiftRepo) Update(ctx context.Context, s shift.Shift) error {
	r.updated = &s
	return nil
}

type stubSiteRepo struct {
	site.SiteRepository
	sites map[string]site.Site
}

func (r *stubSiteRepo) GetByID(ctx context.Context, id string) (site.Site, error) {
	st, ok := r.sites[id]
	if !ok {
		return site.Site{}, site.ErrSiteNotFound
	}
	return st, nil
}

type stubUserRepo struct {
	user.UserRepository
	users map[string]user.User
}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func newTestShiftService() (*stubShiftRepo, shift.ShiftService) {
	shiftRepo := &stubShiftRepo{byID: map[string]shift.Shift{}}
	siteRepo := &stubSiteRepo{sites: map[string]site.Site{
		"site-1": {ID: "site-1", Name: "Office East"},
		"site-2": {ID: "site-2", Name: "Warehouse North"},
	}}
	userRepo := &stubUserRepo{users: map[string]user.User{
		"worker-1": {ID: "worker-1", Role: user.RoleWorker, IsActive: true},
		"worker-2": {ID: "worker-2", Role: user.RoleWorker, IsActive: false},
	}}
	return shiftRepo, NewShiftService(shiftRepo, siteRepo, userRepo)
}

func TestShiftService_Create_ParsesDateAndStartsPlanned(t *testing.T) {
	shiftRepo, svc := newTestShiftService()

	resp, err := svc.Create(context.Background(), shift.CreateShiftRequest{
		SiteID:   "site-1",
		WorkerID: "worker-1",
		Date:     "2026-03-05",
		StartsAt: "2026-03-05T08:00:00Z",
	})

	require.NoError(t, err)
	require.NotNil(t, shiftRepo.created)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), shiftRepo.created.Date)
	assert.Equal(t, shift.StatusPlanned, shiftRepo.created.Status)
	assert.Equal(t, "2026-03-05", resp.Date)
	assert.Equal(t, string(shift.StatusPlanned), resp.Status)
}

func TestShiftService_Create_MalformedDate(t *testing.T) {
	_, svc := newTestShiftService()

	_, err := svc.Create(context.Background(), shift.CreateShiftRequest{
		SiteID:   "site-1",
		WorkerID: "worker-1",
		Date:     "05/03/2026",
		StartsAt: "2026-03-05T08:00:00Z",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "date")
}

func TestShiftService_Create_InactiveWorker(t *testing.T) {
	_, svc := newTestShiftService()

	_, err := svc.Create(context.Background(), shift.CreateShiftRequest{
		SiteID:   "site-1",
		WorkerID: "worker-2",
		Date:     "2026-03-05",
		StartsAt: "2026-03-05T08:00:00Z",
	})

	assert.ErrorIs(t, err, user.ErrUserInactive)
}

func TestShiftService_Update_ReassignRequiresPlanned(t *testing.T) {
	shiftRepo, svc := newTestShiftService()
	shiftRepo.byID["shift-1"] = shift.Shift{
		ID:       "shift-1",
		SiteID:   "site-1",
		WorkerID: "worker-1",
		Status:   shift.StatusInProgress,
	}

	newSite := "site-2"
	_, err := svc.Update(context.Background(), shift.UpdateShiftRequest{
		ID:     "shift-1",
		SiteID: &newSite,
	})

	assert.ErrorIs(t, err, shift.ErrShiftNotPlanned)
	assert.Nil(t, shiftRepo.updated)
}

func TestShiftService_Update_ReschedulesStartedShift(t *testing.T) {
	shiftRepo, svc := newTestShiftService()
	shiftRepo.byID["shift-1"] = shift.Shift{
		ID:       "shift-1",
		SiteID:   "site-1",
		WorkerID: "worker-1",
		Date:     time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		StartsAt: time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC),
		Status:   shift.StatusInProgress,
	}

	// Changing the schedule alone is allowed after the shift has started.
	newDate := "2026-03-06"
	newStart := "2026-03-06T08:00:00Z"
	resp, err := svc.Update(context.Background(), shift.UpdateShiftRequest{
		ID:       "shift-1",
		Date:     &newDate,
		StartsAt: &newStart,
	})

	require.NoError(t, err)
	require.NotNil(t, shiftRepo.updated)
	assert.Equal(t, time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC), shiftRepo.updated.Date)
	assert.Equal(t, "2026-03-06", resp.Date)
}
