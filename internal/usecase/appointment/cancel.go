package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-book/internal/audit"
	domain "github.com/BruksfildServices01/barber-book/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-book/internal/httperr"
	"github.com/BruksfildServices01/barber-book/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute marks the appointment CANCELLED. The record stays around as
// history, and freeing a slot never needs a conflict check.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	ap, err := uc.repo.FindAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.NotFoundErr("appointment_not_found", "Appointment not found")
	}

	if err := domain.Cancel(ap, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: ap.BarbershopID,
		Action:       "appointment_cancelled",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
