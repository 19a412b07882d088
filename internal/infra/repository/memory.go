package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-book/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-book/internal/models"
)

// AppointmentMemoryRepository is a map-backed Repository. It backs the use
// case tests and mirrors the transactional guarantees of the Postgres
// implementation: Transaction serializes callers, so a conflict check and
// the write that follows it are atomic.
type AppointmentMemoryRepository struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	appointments map[uuid.UUID]models.Appointment
	services     map[uuid.UUID]models.Service
	users        map[uuid.UUID]models.User
	barbershops  map[uuid.UUID]models.Barbershop
	workingHours []models.WorkingHours
}

func NewAppointmentMemoryRepository() *AppointmentMemoryRepository {
	return &AppointmentMemoryRepository{
		appointments: make(map[uuid.UUID]models.Appointment),
		services:     make(map[uuid.UUID]models.Service),
		users:        make(map[uuid.UUID]models.User),
		barbershops:  make(map[uuid.UUID]models.Barbershop),
	}
}

// --------------------------------------------------
// Seeding
// --------------------------------------------------

func (r *AppointmentMemoryRepository) PutService(svc models.Service) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services[svc.ID] = svc
}

func (r *AppointmentMemoryRepository) PutUser(user models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
}

func (r *AppointmentMemoryRepository) PutBarbershop(shop models.Barbershop) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.barbershops[shop.ID] = shop
}

func (r *AppointmentMemoryRepository) PutWorkingHours(wh models.WorkingHours) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workingHours = append(r.workingHours, wh)
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *AppointmentMemoryRepository) GetBarbershop(
	_ context.Context,
	id uuid.UUID,
) (*models.Barbershop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shop, ok := r.barbershops[id]
	if !ok {
		return nil, nil
	}
	return &shop, nil
}

func (r *AppointmentMemoryRepository) GetService(
	_ context.Context,
	id uuid.UUID,
) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	svc, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	return &svc, nil
}

func (r *AppointmentMemoryRepository) GetUser(
	_ context.Context,
	id uuid.UUID,
) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

func (r *AppointmentMemoryRepository) CreateAppointment(
	_ context.Context,
	ap *models.Appointment,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	now := time.Now()
	ap.CreatedAt = now
	ap.UpdatedAt = now

	r.appointments[ap.ID] = *ap
	return nil
}

func (r *AppointmentMemoryRepository) SaveAppointment(
	_ context.Context,
	ap *models.Appointment,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap.UpdatedAt = time.Now()
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *AppointmentMemoryRepository) UpdateAppointment(
	_ context.Context,
	id uuid.UUID,
	changes domain.Changes,
) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}

	if changes.ServiceID != nil {
		ap.ServiceID = *changes.ServiceID
	}
	if changes.StartTime != nil {
		ap.StartTime = *changes.StartTime
	}
	if changes.EndTime != nil {
		ap.EndTime = *changes.EndTime
	}
	if changes.Price != nil {
		ap.Price = *changes.Price
	}
	if changes.Status != nil {
		ap.Status = string(*changes.Status)
	}
	if changes.CancelledAt != nil {
		ap.CancelledAt = changes.CancelledAt
	}
	if changes.CompletedAt != nil {
		ap.CompletedAt = changes.CompletedAt
	}
	ap.UpdatedAt = time.Now()

	r.appointments[id] = ap
	return &ap, nil
}

func (r *AppointmentMemoryRepository) DeleteAppointment(
	_ context.Context,
	id uuid.UUID,
) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[id]; !ok {
		return false, nil
	}
	delete(r.appointments, id)
	return true, nil
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentMemoryRepository) FindAppointmentByID(
	_ context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	return &ap, nil
}

func (r *AppointmentMemoryRepository) FindByBarber(
	_ context.Context,
	barberID uuid.UUID,
) ([]models.Appointment, error) {
	return r.collect(func(ap models.Appointment) bool {
		return ap.BarberID == barberID
	}, false), nil
}

func (r *AppointmentMemoryRepository) FindByClient(
	_ context.Context,
	clientID uuid.UUID,
) ([]models.Appointment, error) {
	return r.collect(func(ap models.Appointment) bool {
		return ap.ClientID == clientID
	}, false), nil
}

func (r *AppointmentMemoryRepository) FindByBarbershop(
	_ context.Context,
	barbershopID uuid.UUID,
) ([]models.Appointment, error) {
	return r.collect(func(ap models.Appointment) bool {
		return ap.BarbershopID == barbershopID
	}, false), nil
}

func (r *AppointmentMemoryRepository) FindByDateRange(
	_ context.Context,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {
	return r.collect(func(ap models.Appointment) bool {
		return !ap.StartTime.Before(from) && !ap.EndTime.After(to)
	}, true), nil
}

func (r *AppointmentMemoryRepository) FindOverlapping(
	_ context.Context,
	barberID uuid.UUID,
	start time.Time,
	end time.Time,
	excludeID *uuid.UUID,
) ([]models.Appointment, error) {
	return r.collect(func(ap models.Appointment) bool {
		if ap.BarberID != barberID {
			return false
		}
		if ap.Status == string(domain.StatusCancelled) {
			return false
		}
		if excludeID != nil && ap.ID == *excludeID {
			return false
		}
		return domain.Overlaps(ap.StartTime, ap.EndTime, start, end)
	}, true), nil
}

func (r *AppointmentMemoryRepository) PaginateAppointments(
	_ context.Context,
	limit int,
	offset int,
) ([]models.Appointment, int64, error) {

	all := r.collect(func(models.Appointment) bool { return true }, false)
	total := int64(len(all))

	if offset >= len(all) {
		return []models.Appointment{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *AppointmentMemoryRepository) collect(
	keep func(models.Appointment) bool,
	ascending bool,
) []models.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Appointment, 0)
	for _, ap := range r.appointments {
		if keep(ap) {
			out = append(out, ap)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if ascending {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[j].StartTime.Before(out[i].StartTime)
	})
	return out
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *AppointmentMemoryRepository) GetWorkingHours(
	_ context.Context,
	barberID uuid.UUID,
	weekday int,
) (*models.WorkingHours, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, wh := range r.workingHours {
		if wh.BarberID == barberID && wh.Weekday == weekday {
			out := wh
			return &out, nil
		}
	}
	return nil, nil
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *AppointmentMemoryRepository) Transaction(
	_ context.Context,
	fn func(domain.Repository) error,
) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()
	return fn(r)
}

// Compile-time check
var _ domain.Repository = (*AppointmentMemoryRepository)(nil)
