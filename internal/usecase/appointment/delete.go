package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-book/internal/audit"
	domain "github.com/BruksfildServices01/barber-book/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-book/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute hard-removes the record. Administrative purge only; client-facing
// flows cancel instead, which keeps history.
func (uc *DeleteAppointment) Execute(ctx context.Context, id uuid.UUID) error {
	ap, err := uc.repo.FindAppointmentByID(ctx, id)
	if err != nil {
		return err
	}
	if ap == nil {
		return httperr.NotFoundErr("appointment_not_found", "Appointment not found")
	}

	existed, err := uc.repo.DeleteAppointment(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return httperr.NotFoundErr("appointment_not_found", "Appointment not found")
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: ap.BarbershopID,
		Action:       "appointment_deleted",
		Entity:       "appointment",
		EntityID:     &id,
	})

	return nil
}
