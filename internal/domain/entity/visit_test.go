package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVisitOverlaps(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	visit := &Visit{
		Date:             start,
		PredictedEndDate: start.Add(time.Hour),
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical interval", start, start.Add(time.Hour), true},
		{"contained interval", start.Add(10 * time.Minute), start.Add(20 * time.Minute), true},
		{"overlapping the start", start.Add(-30 * time.Minute), start.Add(30 * time.Minute), true},
		{"overlapping the end", start.Add(30 * time.Minute), start.Add(90 * time.Minute), true},
		{"ending exactly at the start", start.Add(-time.Hour), start, false},
		{"starting exactly at the end", start.Add(time.Hour), start.Add(2 * time.Hour), false},
		{"entirely before", start.Add(-2 * time.Hour), start.Add(-time.Hour), false},
		{"entirely after", start.Add(2 * time.Hour), start.Add(3 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, visit.Overlaps(tt.start, tt.end))
		})
	}
}

func TestVisitIsLifecycleLocked(t *testing.T) {
	assert.False(t, (&Visit{Status: VisitStatusScheduled}).IsLifecycleLocked())
	assert.False(t, (&Visit{Status: VisitStatusCancelled}).IsLifecycleLocked())
	assert.True(t, (&Visit{Status: VisitStatusInProgress}).IsLifecycleLocked())
	assert.True(t, (&Visit{Status: VisitStatusCompleted}).IsLifecycleLocked())
}

func TestVisitInEditLockWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, (&Visit{Date: now.Add(24*time.Hour + time.Minute)}).InEditLockWindow(now))
	assert.True(t, (&Visit{Date: now.Add(24 * time.Hour)}).InEditLockWindow(now))
	assert.True(t, (&Visit{Date: now.Add(time.Hour)}).InEditLockWindow(now))
	assert.True(t, (&Visit{Date: now.Add(-time.Hour)}).InEditLockWindow(now))
}

func TestValidVisitStatus(t *testing.T) {
	assert.True(t, ValidVisitStatus(VisitStatusScheduled))
	assert.True(t, ValidVisitStatus(VisitStatusInProgress))
	assert.True(t, ValidVisitStatus(VisitStatusCompleted))
	assert.True(t, ValidVisitStatus(VisitStatusCancelled))
	assert.False(t, ValidVisitStatus("archived"))
	assert.False(t, ValidVisitStatus(""))
}
