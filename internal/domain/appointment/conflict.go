package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Overlaps reports whether the half-open slots [s1,e1) and [s2,e2) intersect.
// Touching boundaries (e1 == s2) do not overlap, so back-to-back appointments
// are allowed.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// ConflictChecker is the single authority on slot conflicts. Every caller
// that needs overlap semantics goes through HasConflict instead of redoing
// the interval math.
type ConflictChecker struct {
	repo Repository
}

func NewConflictChecker(repo Repository) *ConflictChecker {
	return &ConflictChecker{repo: repo}
}

// HasConflict reports whether the barber already holds a non-cancelled
// appointment intersecting [start,end). excludeID skips one appointment, so
// an update never conflicts with its own current slot.
func (c *ConflictChecker) HasConflict(
	ctx context.Context,
	barberID uuid.UUID,
	start time.Time,
	end time.Time,
	excludeID *uuid.UUID,
) (bool, error) {

	overlapping, err := c.repo.FindOverlapping(ctx, barberID, start, end, excludeID)
	if err != nil {
		return false, err
	}

	return len(overlapping) > 0, nil
}
