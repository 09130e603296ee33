package report

import (
	"math"
	"sort"
	"time"

	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/report"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/timelog"
)

// aggregate folds raw time-log entries into the report shape. Best-effort:
// malformed rows are dropped or bucketed, never raised.
func aggregate(entries []timelog.TimeLog) report.TimeLogReport {
	result := report.TimeLogReport{
		Workers:    []report.WorkerSummary{},
		Rows:       []report.ReportRow{},
		Incomplete: []report.IncompleteSession{},
	}

	workerIndex := make(map[string]int)

	for _, entry := range entries {
		workerName := ""
		if entry.WorkerName != nil {
			workerName = *entry.WorkerName
		}

		if entry.EndedAt == nil {
			// Still-open session: listed for follow-up, excluded from totals.
			result.Incomplete = append(result.Incomplete, report.IncompleteSession{
				TimeLogID:  entry.ID,
				ShiftID:    entry.ShiftID,
				WorkerID:   entry.WorkerID,
				WorkerName: workerName,
				StartedAt:  entry.StartedAt.Format(time.RFC3339),
			})
			continue
		}

		minutes := int(math.Round(entry.EndedAt.Sub(entry.StartedAt).Minutes()))
		if minutes <= 0 {
			// Clock skew or anomalous data; dropped from totals, not an error.
			continue
		}

		result.Rows = append(result.Rows, report.ReportRow{
			TimeLogID:  entry.ID,
			ShiftID:    entry.ShiftID,
			SiteID:     entry.SiteID,
			SiteName:   entry.SiteName,
			WorkerID:   entry.WorkerID,
			WorkerName: workerName,
			StartedAt:  entry.StartedAt.Format(time.RFC3339),
			EndedAt:    entry.EndedAt.Format(time.RFC3339),
			Minutes:    minutes,
		})

		idx, ok := workerIndex[entry.WorkerID]
		if !ok {
			idx = len(result.Workers)
			workerIndex[entry.WorkerID] = idx
			result.Workers = append(result.Workers, report.WorkerSummary{
				WorkerID:   entry.WorkerID,
				WorkerName: workerName,
				AvatarURL:  entry.WorkerAvatarURL,
			})
		}
		result.Workers[idx].Minutes += minutes

		result.TotalMinutes += minutes
	}

	for i := range result.Workers {
		result.Workers[i].Hours = roundHours(result.Workers[i].Minutes)
	}
	result.TotalHours = roundHours(result.TotalMinutes)

	// Descending by minutes; ties keep first-seen order.
	sort.SliceStable(result.Workers, func(i, j int) bool {
		return result.Workers[i].Minutes > result.Workers[j].Minutes
	})

	return result
}

func roundHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}
