package shift

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/shift"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/site"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/user"
	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/validator"
)

type ShiftServiceImpl struct {
	shiftRepo shift.ShiftRepository
	siteRepo  site.SiteRepository
	userRepo  user.UserRepository
}

func NewShiftService(
	shiftRepo shift.ShiftRepository,
	siteRepo site.SiteRepository,
	userRepo user.UserRepository,
) shift.ShiftService {
	return &ShiftServiceImpl{
		shiftRepo: shiftRepo,
		siteRepo:  siteRepo,
		userRepo:  userRepo,
	}
}

// Create implements shift.ShiftService. New shifts always start out planned.
func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	if _, err := s.siteRepo.GetByID(ctx, req.SiteID); err != nil {
		return shift.ShiftResponse{}, err
	}
	workerData, err := s.userRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if !workerData.IsActive {
		return shift.ShiftResponse{}, user.ErrUserInactive
	}

	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		return shift.ShiftResponse{}, fmt.Errorf("invalid date: %q", req.Date)
	}
	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("invalid starts_at: %w", err)
	}

	newShift := shift.Shift{
		SiteID:   req.SiteID,
		WorkerID: req.WorkerID,
		Date:     date,
		StartsAt: startsAt,
		Status:   shift.StatusPlanned,
	}
	if req.EndsAt != nil {
		endsAt, err := time.Parse(time.RFC3339, *req.EndsAt)
		if err != nil {
			return shift.ShiftResponse{}, fmt.Errorf("invalid ends_at: %w", err)
		}
		newShift.EndsAt = &endsAt
	}

	created, err := s.shiftRepo.Create(ctx, newShift)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return toShiftResponse(created), nil
}

// Get implements shift.ShiftService.
func (s *ShiftServiceImpl) Get(ctx context.Context, id string) (shift.ShiftResponse, error) {
	shiftData, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return toShiftResponse(shiftData), nil
}

// List implements shift.ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context, filter shift.ShiftFilter) (shift.ListShiftResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	shifts, total, err := s.shiftRepo.List(ctx, filter)
	if err != nil {
		return shift.ListShiftResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toShiftResponse(sh))
	}

	return shift.ListShiftResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Shifts:     responses,
	}, nil
}

// Update implements shift.ShiftService. Reassigning the site or worker is
// only possible while the shift has not started.
func (s *ShiftServiceImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	shiftData, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	reassigning := req.SiteID != nil || req.WorkerID != nil
	if reassigning && shiftData.Status != shift.StatusPlanned {
		return shift.ShiftResponse{}, shift.ErrShiftNotPlanned
	}

	if req.SiteID != nil {
		if _, err := s.siteRepo.GetByID(ctx, *req.SiteID); err != nil {
			return shift.ShiftResponse{}, err
		}
		shiftData.SiteID = *req.SiteID
	}
	if req.WorkerID != nil {
		workerData, err := s.userRepo.GetByID(ctx, *req.WorkerID)
		if err != nil {
			return shift.ShiftResponse{}, err
		}
		if !workerData.IsActive {
			return shift.ShiftResponse{}, user.ErrUserInactive
		}
		shiftData.WorkerID = *req.WorkerID
	}
	if req.Date != nil {
		date, ok := validator.IsValidDate(*req.Date)
		if !ok {
			return shift.ShiftResponse{}, fmt.Errorf("invalid date: %q", *req.Date)
		}
		shiftData.Date = date
	}
	if req.StartsAt != nil {
		startsAt, err := time.Parse(time.RFC3339, *req.StartsAt)
		if err != nil {
			return shift.ShiftResponse{}, fmt.Errorf("invalid starts_at: %w", err)
		}
		shiftData.StartsAt = startsAt
	}
	if req.EndsAt != nil {
		endsAt, err := time.Parse(time.RFC3339, *req.EndsAt)
		if err != nil {
			return shift.ShiftResponse{}, fmt.Errorf("invalid ends_at: %w", err)
		}
		shiftData.EndsAt = &endsAt
	}

	if err := s.shiftRepo.Update(ctx, shiftData); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
	}

	return toShiftResponse(shiftData), nil
}

// Delete implements shift.ShiftService. Shifts with recorded time logs stay.
func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.shiftRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.shiftRepo.Delete(ctx, id)
}

func toShiftResponse(sh shift.Shift) shift.ShiftResponse {
	response := shift.ShiftResponse{
		ID:         sh.ID,
		SiteID:     sh.SiteID,
		SiteName:   sh.SiteName,
		WorkerID:   sh.WorkerID,
		WorkerName: sh.WorkerName,
		Date:       sh.Date.Format("2006-01-02"),
		StartsAt:   sh.StartsAt.Format(time.RFC3339),
		Status:     string(sh.Status),
		CreatedAt:  sh.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  sh.UpdatedAt.Format(time.RFC3339),
	}
	if sh.EndsAt != nil {
		endsAt := sh.EndsAt.Format(time.RFC3339)
		response.EndsAt = &endsAt
	}
	return response
}
