package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/timelog"
	"github.com/cleansweep-app/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimeLogHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
}

type TimeLogHandlerImpl struct {
	timeLogService timelog.TimeLogService
}

func NewTimeLogHandler(timeLogService timelog.TimeLogService) TimeLogHandler {
	return &TimeLogHandlerImpl{timeLogService: timeLogService}
}

// CheckIn implements TimeLogHandler.
func (h *TimeLogHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var checkInReq timelog.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&checkInReq); err != nil {
		slog.Error("Check-in decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	checkInReq.ShiftID = chi.URLParam(r, "id")

	checkInResponse, err := h.timeLogService.CheckIn(r.Context(), checkInReq)
	if err != nil {
		slog.Error("Check-in service error", "error", err, "shift_id", checkInReq.ShiftID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Worker checked in",
		"shift_id", checkInResponse.ShiftID,
		"time_log_id", checkInResponse.TimeLogID,
		"distance_meters", checkInResponse.DistanceMeters,
	)
	response.Created(w, "Checked in successfully", checkInResponse)
}

// CheckOut implements TimeLogHandler.
func (h *TimeLogHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	shiftID := chi.URLParam(r, "id")

	checkOutResponse, err := h.timeLogService.CheckOut(r.Context(), shiftID)
	if err != nil {
		slog.Error("Check-out service error", "error", err, "shift_id", shiftID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Worker checked out",
		"shift_id", checkOutResponse.ShiftID,
		"time_log_id", checkOutResponse.TimeLogID,
		"minutes", checkOutResponse.Minutes,
	)
	response.SuccessWithMessage(w, "Checked out successfully", checkOutResponse)
}
