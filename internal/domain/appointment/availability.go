package appointment

import (
	"time"

	"github.com/google/uuid"
)

type AvailabilityInput struct {
	BarberID  uuid.UUID
	ServiceID uuid.UUID
	Date      time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
