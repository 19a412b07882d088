package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-book/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-book/internal/dto"
)

const DefaultPageLimit = 10

// AppointmentQueries bundles the read-only lookups. No business rules here,
// only projection.
type AppointmentQueries struct {
	repo domain.Repository
}

func NewAppointmentQueries(repo domain.Repository) *AppointmentQueries {
	return &AppointmentQueries{repo: repo}
}

// FindAll returns one page, newest start_time first, plus the total count.
func (q *AppointmentQueries) FindAll(
	ctx context.Context,
	page int,
	limit int,
) ([]dto.AppointmentResponse, int64, error) {

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	offset := (page - 1) * limit

	aps, total, err := q.repo.PaginateAppointments(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return dto.AppointmentsToResponses(aps), total, nil
}

// FindByID returns nil when the appointment does not exist.
func (q *AppointmentQueries) FindByID(
	ctx context.Context,
	id uuid.UUID,
) (*dto.AppointmentResponse, error) {

	ap, err := q.repo.FindAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, nil
	}

	out := dto.AppointmentToResponse(ap)
	return &out, nil
}

func (q *AppointmentQueries) FindByBarber(
	ctx context.Context,
	barberID uuid.UUID,
) ([]dto.AppointmentResponse, error) {

	aps, err := q.repo.FindByBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}
	return dto.AppointmentsToResponses(aps), nil
}

func (q *AppointmentQueries) FindByClient(
	ctx context.Context,
	clientID uuid.UUID,
) ([]dto.AppointmentResponse, error) {

	aps, err := q.repo.FindByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return dto.AppointmentsToResponses(aps), nil
}

func (q *AppointmentQueries) FindByBarbershop(
	ctx context.Context,
	barbershopID uuid.UUID,
) ([]dto.AppointmentResponse, error) {

	aps, err := q.repo.FindByBarbershop(ctx, barbershopID)
	if err != nil {
		return nil, err
	}
	return dto.AppointmentsToResponses(aps), nil
}

func (q *AppointmentQueries) FindByDateRange(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]dto.AppointmentResponse, error) {

	aps, err := q.repo.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return dto.AppointmentsToResponses(aps), nil
}
