package report

import (
	"context"
	"fmt"
	"time"

	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/report"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/timelog"
)

type ReportServiceImpl struct {
	timeLogRepo timelog.TimeLogRepository
}

func NewReportService(timeLogRepo timelog.TimeLogRepository) report.ReportService {
	return &ReportServiceImpl{timeLogRepo: timeLogRepo}
}

// BuildTimeLogReport implements report.ReportService.
func (s *ReportServiceImpl) BuildTimeLogReport(ctx context.Context, req report.TimeLogReportRequest) (report.TimeLogReport, error) {
	if err := req.Validate(); err != nil {
		return report.TimeLogReport{}, err
	}

	fromTs, toTs, err := reportWindow(req.From, req.To)
	if err != nil {
		return report.TimeLogReport{}, err
	}

	entries, err := s.timeLogRepo.ListRange(ctx, timelog.RangeFilter{
		From:     fromTs,
		To:       toTs,
		WorkerID: req.WorkerID,
	})
	if err != nil {
		return report.TimeLogReport{}, fmt.Errorf("failed to query time logs: %w", err)
	}

	result := aggregate(entries)
	result.PeriodFrom = req.From
	result.PeriodTo = req.To
	result.GeneratedAt = time.Now().UTC().Format(time.RFC3339)

	return result, nil
}

// reportWindow maps inclusive calendar dates onto the half-open UTC
// timestamp range [fromT00:00:00Z, (to+1d)T00:00:00Z).
func reportWindow(from, to string) (time.Time, time.Time, error) {
	fromDate, err := time.ParseInLocation("2006-01-02", from, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid from date: %w", err)
	}
	toDate, err := time.ParseInLocation("2006-01-02", to, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid to date: %w", err)
	}

	// Whole-day arithmetic; no fractional-day drift.
	return fromDate, toDate.AddDate(0, 0, 1), nil
}
