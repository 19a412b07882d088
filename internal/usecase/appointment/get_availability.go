package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-book/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-book/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute suggests free slots of the service's duration inside the barber's
// working hours for one day. Purely advisory: booking still goes through the
// conflict checker.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, httperr.NotFoundErr("service_not_found", "Service not found")
	}

	weekday := int(in.Date.Weekday())

	wh, err := uc.repo.GetWorkingHours(ctx, in.BarberID, weekday)
	if err != nil {
		return nil, err
	}
	if wh == nil || !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		return []domain.TimeSlot{}, nil
	}

	loc := in.Date.Location()

	parseHM := func(hm string) (time.Time, error) {
		t, err := time.Parse("15:04", hm)
		if err != nil {
			return time.Time{}, err
		}
		return time.Date(
			in.Date.Year(), in.Date.Month(), in.Date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		), nil
	}

	// A schedule row that fails to parse offers no slots rather than
	// midnight-anchored ones.
	dayStart, err := parseHM(wh.StartTime)
	if err != nil {
		return []domain.TimeSlot{}, nil
	}
	dayEnd, err := parseHM(wh.EndTime)
	if err != nil {
		return []domain.TimeSlot{}, nil
	}

	busy, err := uc.repo.FindOverlapping(ctx, in.BarberID, dayStart, dayEnd, nil)
	if err != nil {
		return nil, err
	}

	slotDuration := time.Duration(svc.DurationMinutes) * time.Minute
	if slotDuration <= 0 {
		return []domain.TimeSlot{}, nil
	}

	slots := []domain.TimeSlot{}
	for cur := dayStart; !cur.Add(slotDuration).After(dayEnd); cur = cur.Add(slotDuration) {
		slotStart := cur
		slotEnd := cur.Add(slotDuration)

		conflict := false
		for _, ap := range busy {
			if domain.Overlaps(ap.StartTime, ap.EndTime, slotStart, slotEnd) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, domain.TimeSlot{
				Start: slotStart.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	return slots, nil
}
