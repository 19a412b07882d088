package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-book/internal/httperr"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from Status
		to   Status
		ok   bool
	}{
		{"scheduled to confirmed", StatusScheduled, StatusConfirmed, true},
		{"scheduled to cancelled", StatusScheduled, StatusCancelled, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"scheduled to completed", StatusScheduled, StatusCompleted, false},
		{"completed to scheduled", StatusCompleted, StatusScheduled, false},
		{"completed to cancelled", StatusCompleted, StatusCancelled, false},
		{"cancelled to scheduled", StatusCancelled, StatusScheduled, false},
		{"cancelled to confirmed", StatusCancelled, StatusConfirmed, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.from, tc.to)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, httperr.IsKind(err, httperr.KindInvalidState))
		})
	}
}

func TestCanTransition_SameStatus(t *testing.T) {
	err := CanTransition(StatusConfirmed, StatusConfirmed)
	require.Error(t, err)

	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, httperr.KindInvalidState, be.Kind)
	assert.Equal(t, "Appointment is already CONFIRMED", be.Message)
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []Status{StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.True(t, IsValidStatus(s))
	}
	assert.False(t, IsValidStatus(Status("PENDING")))
	assert.False(t, IsValidStatus(Status("scheduled")))
}
