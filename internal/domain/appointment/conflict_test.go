package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-book/internal/models"
)

func newTestAppointment(status Status) *models.Appointment {
	return &models.Appointment{Status: string(status)}
}

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name    string
		s1, e1  time.Time
		s2, e2  time.Time
		overlap bool
	}{
		{"identical windows", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
		{"partial overlap at start", at(10, 0), at(11, 0), at(10, 30), at(11, 30), true},
		{"partial overlap at end", at(10, 30), at(11, 30), at(10, 0), at(11, 0), true},
		{"contained", at(10, 0), at(12, 0), at(10, 30), at(11, 0), true},
		{"containing", at(10, 30), at(11, 0), at(10, 0), at(12, 0), true},
		{"back to back, first then second", at(10, 0), at(11, 0), at(11, 0), at(12, 0), false},
		{"back to back, second then first", at(11, 0), at(12, 0), at(10, 0), at(11, 0), false},
		{"disjoint", at(8, 0), at(9, 0), at(14, 0), at(15, 0), false},
		{"one minute overlap", at(10, 0), at(11, 1), at(11, 0), at(12, 0), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlap, Overlaps(tc.s1, tc.e1, tc.s2, tc.e2))
			// Overlap is symmetric.
			assert.Equal(t, tc.overlap, Overlaps(tc.s2, tc.e2, tc.s1, tc.e1))
		})
	}
}

func TestEntityLifecycleTimestamps(t *testing.T) {
	now := time.Now().UTC()

	ap := newTestAppointment(StatusScheduled)
	assert.NoError(t, Confirm(ap))
	assert.Equal(t, string(StatusConfirmed), ap.Status)

	assert.NoError(t, Complete(ap, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	assert.Equal(t, &now, ap.CompletedAt)

	ap = newTestAppointment(StatusScheduled)
	assert.NoError(t, Cancel(ap, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.Equal(t, &now, ap.CancelledAt)
}
