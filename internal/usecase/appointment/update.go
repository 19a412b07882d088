package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-book/internal/audit"
	domain "github.com/BruksfildServices01/barber-book/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-book/internal/httperr"
	"github.com/BruksfildServices01/barber-book/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// UpdateAppointmentInput carries the patchable fields. Barber and client are
// absent on purpose: an appointment is never reassigned, it is cancelled and
// rebooked.
type UpdateAppointmentInput struct {
	ServiceID *uuid.UUID
	StartTime *time.Time
	EndTime   *time.Time
	Price     *decimal.Decimal
	Status    *domain.Status
}

func (in UpdateAppointmentInput) touchesTime() bool {
	return in.StartTime != nil || in.EndTime != nil
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uuid.UUID,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.FindAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.NotFoundErr("appointment_not_found", "Appointment not found")
	}

	// Effective window: the incoming value, or the stored one for whichever
	// side the patch leaves unset.
	start := ap.StartTime
	end := ap.EndTime
	if in.StartTime != nil {
		start = *in.StartTime
	}
	if in.EndTime != nil {
		end = *in.EndTime
	}
	if !end.After(start) {
		return nil, httperr.ValidationErr(
			"invalid_time_window",
			"End time must be after start time",
		)
	}

	if in.Status != nil {
		if !domain.IsValidStatus(*in.Status) {
			return nil, httperr.ValidationErr("invalid_status", "Unknown appointment status")
		}
		if err := domain.CanTransition(domain.Status(ap.Status), *in.Status); err != nil {
			return nil, err
		}
	}

	if in.ServiceID != nil {
		svc, err := uc.repo.GetService(ctx, *in.ServiceID)
		if err != nil {
			return nil, err
		}
		if svc == nil {
			return nil, httperr.NotFoundErr("service_not_found", "Service not found")
		}
	}

	var updated *models.Appointment
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if in.touchesTime() {
			conflict, err := domain.NewConflictChecker(tx).
				HasConflict(ctx, ap.BarberID, start, end, &id)
			if err != nil {
				return err
			}
			if conflict {
				return httperr.ConflictErr(
					"time_conflict",
					"Barber has a conflict with this time slot",
				)
			}
		}

		changes := domain.Changes{
			ServiceID: in.ServiceID,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
			Price:     in.Price,
			Status:    in.Status,
		}

		// A status patch records the same lifecycle timestamp the
		// dedicated cancel/complete endpoints would.
		if in.Status != nil {
			now := time.Now().UTC()
			switch *in.Status {
			case domain.StatusCancelled:
				changes.CancelledAt = &now
			case domain.StatusCompleted:
				changes.CompletedAt = &now
			}
		}

		updated, err = tx.UpdateAppointment(ctx, id, changes)
		return err
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: updated.BarbershopID,
		Action:       "appointment_updated",
		Entity:       "appointment",
		EntityID:     &updated.ID,
	})

	return updated, nil
}
