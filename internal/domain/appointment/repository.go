package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-book/internal/models"
)

// Changes carries the fields a partial update may touch. Barber and client
// are deliberately absent: appointments are not reassignable. CancelledAt
// and CompletedAt accompany the matching Status change so a patch leaves the
// same history a lifecycle endpoint would.
type Changes struct {
	ServiceID   *uuid.UUID
	StartTime   *time.Time
	EndTime     *time.Time
	Price       *decimal.Decimal
	Status      *Status
	CancelledAt *time.Time
	CompletedAt *time.Time
}

// Repository is everything the scheduling use cases need from storage.
// Lookup methods return (nil, nil) when the record is absent.
type Repository interface {
	// -------- Catalog (external entities, by reference) --------
	GetBarbershop(ctx context.Context, id uuid.UUID) (*models.Barbershop, error)

	GetService(ctx context.Context, id uuid.UUID) (*models.Service, error)

	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)

	// -------- Appointment (write) --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	SaveAppointment(ctx context.Context, ap *models.Appointment) error

	UpdateAppointment(
		ctx context.Context,
		id uuid.UUID,
		changes Changes,
	) (*models.Appointment, error)

	DeleteAppointment(ctx context.Context, id uuid.UUID) (bool, error)

	// -------- Appointment (read) --------
	FindAppointmentByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error)

	FindByBarber(ctx context.Context, barberID uuid.UUID) ([]models.Appointment, error)

	FindByClient(ctx context.Context, clientID uuid.UUID) ([]models.Appointment, error)

	FindByBarbershop(ctx context.Context, barbershopID uuid.UUID) ([]models.Appointment, error)

	FindByDateRange(ctx context.Context, from, to time.Time) ([]models.Appointment, error)

	// FindOverlapping returns the barber's non-cancelled appointments whose
	// slot intersects [start,end), ascending by start_time. Inside a
	// transaction the matched rows are locked for update.
	FindOverlapping(
		ctx context.Context,
		barberID uuid.UUID,
		start time.Time,
		end time.Time,
		excludeID *uuid.UUID,
	) ([]models.Appointment, error)

	PaginateAppointments(
		ctx context.Context,
		limit int,
		offset int,
	) ([]models.Appointment, int64, error)

	// -------- Working hours (availability suggestions) --------
	GetWorkingHours(ctx context.Context, barberID uuid.UUID, weekday int) (*models.WorkingHours, error)

	// Transaction runs fn against a transactional view of the repository.
	// The conflict check and the write that follows it must share one
	// transaction so concurrent bookings serialize per barber.
	Transaction(ctx context.Context, fn func(Repository) error) error
}
