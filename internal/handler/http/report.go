package http

import (
	"log/slog"
	"net/http"

	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/report"
	"github.com/cleansweep-app/timeclock-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	TimeLogReport(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// TimeLogReport implements ReportHandler.
func (h *ReportHandlerImpl) TimeLogReport(w http.ResponseWriter, r *http.Request) {
	reportReq := report.TimeLogReportRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}
	if workerID := r.URL.Query().Get("worker_id"); workerID != "" {
		reportReq.WorkerID = &workerID
	}

	reportResponse, err := h.reportService.BuildTimeLogReport(r.Context(), reportReq)
	if err != nil {
		slog.Error("Time log report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, reportResponse)
}
