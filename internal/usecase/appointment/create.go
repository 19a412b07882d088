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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarberID     uuid.UUID
	ClientID     uuid.UUID
	BarbershopID uuid.UUID

	ServiceID uuid.UUID
	StartTime time.Time
	EndTime   time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if !in.EndTime.After(in.StartTime) {
		return nil, httperr.ValidationErr(
			"invalid_time_window",
			"End time must be after start time",
		)
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, httperr.NotFoundErr("service_not_found", "Service not found")
	}

	barber, err := uc.repo.GetUser(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if barber == nil {
		return nil, httperr.NotFoundErr("barber_not_found", "Barber not found")
	}
	if barber.BarbershopID == nil || *barber.BarbershopID != in.BarbershopID {
		return nil, httperr.AssociationErr(
			"barber_not_in_barbershop",
			"Barber does not work at this barbershop",
		)
	}

	client, err := uc.repo.GetUser(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, httperr.NotFoundErr("client_not_found", "Client not found")
	}

	ap := &models.Appointment{
		BarbershopID: in.BarbershopID,
		BarberID:     in.BarberID,
		ClientID:     in.ClientID,
		ServiceID:    svc.ID,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		Price:        svc.Price,
		Status:       string(domain.InitialStatus()),
	}

	// Conflict check and insert share one transaction; the exclusion
	// constraint backstops the race neither the check nor the row locks
	// can see (two inserts into a still-empty window).
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		conflict, err := domain.NewConflictChecker(tx).
			HasConflict(ctx, in.BarberID, in.StartTime, in.EndTime, nil)
		if err != nil {
			return err
		}
		if conflict {
			return httperr.ConflictErr(
				"time_conflict",
				"Barber has a conflict with this time slot",
			)
		}

		return tx.CreateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.ClientID,
		Action:       "appointment_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
