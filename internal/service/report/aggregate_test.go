package report

import (
	"testing"
	"time"

	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/report"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/timelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func tsPtr(value string) *time.Time {
	t := ts(value)
	return &t
}

func entry(id, workerID, workerName, started string, ended *string) timelog.TimeLog {
	e := timelog.TimeLog{
		ID:         id,
		ShiftID:    "shift-" + id,
		WorkerID:   workerID,
		WorkerName: strPtr(workerName),
		StartedAt:  ts(started),
	}
	if ended != nil {
		e.EndedAt = tsPtr(*ended)
	}
	return e
}

func TestAggregate_IncompleteExcludedFromTotals(t *testing.T) {
	entries := []timelog.TimeLog{
		entry("a", "w1", "Ana", "2024-01-01T10:00:00Z", strPtr("2024-01-01T10:30:00Z")),
		entry("b", "w1", "Ana", "2024-01-01T11:00:00Z", nil),
	}

	r := aggregate(entries)

	assert.Equal(t, 30, r.TotalMinutes)
	require.Len(t, r.Incomplete, 1)
	assert.Equal(t, "b", r.Incomplete[0].TimeLogID)
	require.Len(t, r.Workers, 1)
	assert.Equal(t, 30, r.Workers[0].Minutes)
	assert.Len(t, r.Rows, 1)
}

func TestAggregate_NegativeDurationDropped(t *testing.T) {
	entries := []timelog.TimeLog{
		entry("a", "w1", "Ana", "2024-01-01T10:00:00Z", strPtr("2024-01-01T09:00:00Z")),
	}

	r := aggregate(entries)

	assert.Equal(t, 0, r.TotalMinutes)
	assert.Empty(t, r.Rows)
	assert.Empty(t, r.Workers)
	assert.Empty(t, r.Incomplete)
}

func TestAggregate_HoursRounding(t *testing.T) {
	// 125 minutes -> 2.08 hours.
	entries := []timelog.TimeLog{
		entry("a", "w1", "Ana", "2024-01-01T10:00:00Z", strPtr("2024-01-01T12:05:00Z")),
	}

	r := aggregate(entries)

	assert.Equal(t, 125, r.TotalMinutes)
	assert.Equal(t, 2.08, r.TotalHours)
}

func TestAggregate_WorkersSortedByMinutesDescending(t *testing.T) {
	entries := []timelog.TimeLog{
		entry("a", "w1", "Ana", "2024-01-01T10:00:00Z", strPtr("2024-01-01T10:30:00Z")),
		entry("b", "w2", "Bo", "2024-01-01T10:00:00Z", strPtr("2024-01-01T12:00:00Z")),
		entry("c", "w3", "Cy", "2024-01-01T10:00:00Z", strPtr("2024-01-01T10:30:00Z")),
	}

	r := aggregate(entries)

	require.Len(t, r.Workers, 3)
	assert.Equal(t, "w2", r.Workers[0].WorkerID)
	// w1 and w3 tie at 30 minutes; first-seen order wins.
	assert.Equal(t, "w1", r.Workers[1].WorkerID)
	assert.Equal(t, "w3", r.Workers[2].WorkerID)
}

func TestAggregate_MinuteRounding(t *testing.T) {
	// 29.6 minutes rounds to 30.
	entries := []timelog.TimeLog{
		entry("a", "w1", "Ana", "2024-01-01T10:00:00Z", strPtr("2024-01-01T10:29:36Z")),
	}

	r := aggregate(entries)

	assert.Equal(t, 30, r.TotalMinutes)
}

func TestReportWindow_ExclusiveUpperBound(t *testing.T) {
	from, to, err := reportWindow("2024-01-01", "2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, ts("2024-01-01T00:00:00Z"), from)
	assert.Equal(t, ts("2024-01-02T00:00:00Z"), to)

	// An entry at 23:59 on the end date is inside the window; midnight of
	// the following day is not.
	inside := ts("2024-01-01T23:59:00Z")
	outside := ts("2024-01-02T00:00:00Z")
	assert.True(t, !inside.Before(from) && inside.Before(to))
	assert.False(t, !outside.Before(from) && outside.Before(to))
}

func TestTimeLogReportRequestValidate(t *testing.T) {
	valid := report.TimeLogReportRequest{From: "2024-01-01", To: "2024-01-31"}
	assert.NoError(t, valid.Validate())

	reversed := report.TimeLogReportRequest{From: "2024-02-01", To: "2024-01-01"}
	assert.Error(t, reversed.Validate())

	missing := report.TimeLogReportRequest{From: "", To: "2024-01-31"}
	assert.Error(t, missing.Validate())

	malformed := report.TimeLogReportRequest{From: "01-01-2024", To: "2024-01-31"}
	assert.Error(t, malformed.Validate())
}
