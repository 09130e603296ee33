package timelog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/shift"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/site"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/timelog"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/database"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/geo"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/sse"
	"github.com/cleansweep-app/timeclock-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
)

type TimeLogServiceImpl struct {
	db          *database.DB
	shiftRepo   shift.ShiftRepository
	siteRepo    site.SiteRepository
	timeLogRepo timelog.TimeLogRepository
	hub         *sse.Hub

	// runTx wraps the check-in and check-out writes in one transaction.
	runTx func(ctx context.Context, db *database.DB, fn func(ctx context.Context) error) error
}

func NewTimeLogService(
	db *database.DB,
	shiftRepo shift.ShiftRepository,
	siteRepo site.SiteRepository,
	timeLogRepo timelog.TimeLogRepository,
	hub *sse.Hub,
) timelog.TimeLogService {
	return &TimeLogServiceImpl{
		db:          db,
		shiftRepo:   shiftRepo,
		siteRepo:    siteRepo,
		timeLogRepo: timeLogRepo,
		hub:         hub,
		runTx:       postgresql.WithTransaction,
	}
}

func callerID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// evaluateCheckIn runs the gate checks in their fixed order and returns the
// measured distance on admission. The first failing check wins; no side
// effects happen here.
func evaluateCheckIn(sh shift.Shift, st site.Site, caller string, req timelog.CheckInRequest) (float64, error) {
	if sh.WorkerID != caller {
		return 0, timelog.ErrShiftNotAssigned
	}

	if sh.Status == shift.StatusDone {
		return 0, timelog.ErrShiftAlreadyDone
	}

	if req.AccuracyMeters > timelog.MaxAccuracyMeters {
		return 0, timelog.ErrPoorSignal
	}

	if !st.HasGeofence() {
		return 0, site.ErrSiteNotConfigured
	}

	distance := geo.HaversineDistance(req.Latitude, req.Longitude, *st.Latitude, *st.Longitude)
	if distance > *st.RadiusMeters {
		return distance, &timelog.GeofenceError{
			DistanceMeters: distance,
			RadiusMeters:   *st.RadiusMeters,
		}
	}

	return distance, nil
}

// CheckIn implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) CheckIn(ctx context.Context, req timelog.CheckInRequest) (timelog.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return timelog.CheckInResponse{}, err
	}

	caller, err := callerID(ctx)
	if err != nil {
		return timelog.CheckInResponse{}, err
	}

	sh, err := s.shiftRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		return timelog.CheckInResponse{}, err
	}

	st, err := s.siteRepo.GetByID(ctx, sh.SiteID)
	if err != nil {
		// A missing site is an administrative data gap; the ordered gate
		// checks decide whether the caller ever gets to see it.
		if !errors.Is(err, site.ErrSiteNotFound) {
			return timelog.CheckInResponse{}, err
		}
		st = site.Site{}
	}

	distance, err := evaluateCheckIn(sh, st, caller, req)
	if err != nil {
		return timelog.CheckInResponse{}, err
	}

	nowUTC := time.Now().UTC()
	var entry timelog.TimeLog

	// Status update and time-log insert are one atomic unit.
	err = s.runTx(ctx, s.db, func(txCtx context.Context) error {
		if sh.Status == shift.StatusPlanned {
			if err := s.shiftRepo.UpdateStatus(txCtx, sh.ID, shift.StatusInProgress); err != nil {
				return err
			}
			sh.Status = shift.StatusInProgress
		}

		entry, err = s.timeLogRepo.Create(txCtx, timelog.TimeLog{
			ShiftID:        sh.ID,
			WorkerID:       caller,
			StartedAt:      nowUTC,
			StartLatitude:  req.Latitude,
			StartLongitude: req.Longitude,
			StartAccuracyM: req.AccuracyMeters,
		})
		return err
	})
	if err != nil {
		return timelog.CheckInResponse{}, fmt.Errorf("failed to record check-in: %w", err)
	}

	resp := timelog.CheckInResponse{
		TimeLogID:      entry.ID,
		ShiftID:        sh.ID,
		ShiftStatus:    string(sh.Status),
		StartedAt:      entry.StartedAt.Format(time.RFC3339),
		DistanceMeters: math.Round(distance),
	}

	s.hub.Broadcast(sse.Event{Event: "check_in", Data: resp})

	return resp, nil
}

// CheckOut implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) CheckOut(ctx context.Context, shiftID string) (timelog.CheckOutResponse, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return timelog.CheckOutResponse{}, err
	}

	sh, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return timelog.CheckOutResponse{}, err
	}

	if sh.WorkerID != caller {
		return timelog.CheckOutResponse{}, timelog.ErrShiftNotAssigned
	}

	open, err := s.timeLogRepo.GetOpenByShift(ctx, shiftID)
	if err != nil {
		return timelog.CheckOutResponse{}, err
	}

	nowUTC := time.Now().UTC()

	err = s.runTx(ctx, s.db, func(txCtx context.Context) error {
		if err := s.timeLogRepo.Close(txCtx, open.ID, nowUTC); err != nil {
			return err
		}
		if sh.Status.CanTransitionTo(shift.StatusDone) {
			if err := s.shiftRepo.UpdateStatus(txCtx, sh.ID, shift.StatusDone); err != nil {
				return err
			}
			sh.Status = shift.StatusDone
		}
		return nil
	})
	if err != nil {
		return timelog.CheckOutResponse{}, fmt.Errorf("failed to record check-out: %w", err)
	}

	minutes := int(math.Round(nowUTC.Sub(open.StartedAt).Minutes()))
	if minutes < 0 {
		minutes = 0
	}

	resp := timelog.CheckOutResponse{
		TimeLogID:   open.ID,
		ShiftID:     sh.ID,
		ShiftStatus: string(sh.Status),
		StartedAt:   open.StartedAt.Format(time.RFC3339),
		EndedAt:     nowUTC.Format(time.RFC3339),
		Minutes:     minutes,
		Hours:       math.Round(float64(minutes)/60*100) / 100,
	}

	s.hub.Broadcast(sse.Event{Event: "check_out", Data: resp})

	return resp, nil
}
