package report

import "context"

// ReportService builds time-log reports. Read-only and idempotent; a report
// generated while check-ins are in flight may or may not reflect them.
type ReportService interface {
	BuildTimeLogReport(ctx context.Context, req TimeLogReportRequest) (TimeLogReport, error)
}
