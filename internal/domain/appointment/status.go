package appointment

import (
	"fmt"

	"github.com/BruksfildServices01/barber-book/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// transitions is the full lifecycle table. COMPLETED and CANCELLED are
// terminal; anything not listed here is rejected.
var transitions = map[Status][]Status{
	StatusScheduled: {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func InitialStatus() Status {
	return StatusScheduled
}

func IsValidStatus(s Status) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition validates a status change against the lifecycle table.
func CanTransition(from, to Status) error {
	if from == to {
		return httperr.InvalidStateErr(
			"invalid_state",
			fmt.Sprintf("Appointment is already %s", from),
		)
	}

	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}

	return httperr.InvalidStateErr(
		"invalid_state",
		fmt.Sprintf("Cannot change appointment status from %s to %s", from, to),
	)
}
