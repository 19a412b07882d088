package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-book/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-book/internal/httperr"
	"github.com/BruksfildServices01/barber-book/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarbershop(
	ctx context.Context,
	id uuid.UUID,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).First(&shop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shop, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uuid.UUID,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &svc, nil
}

func (r *AppointmentGormRepository) GetUser(
	ctx context.Context,
	id uuid.UUID,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if httperr.IsExclusionConflict(err) {
			return httperr.ConflictErr(
				"time_conflict",
				"Barber has a conflict with this time slot",
			)
		}
		return err
	}
	return nil
}

func (r *AppointmentGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	id uuid.UUID,
	changes domain.Changes,
) (*models.Appointment, error) {

	fields := map[string]any{}
	if changes.ServiceID != nil {
		fields["service_id"] = *changes.ServiceID
	}
	if changes.StartTime != nil {
		fields["start_time"] = *changes.StartTime
	}
	if changes.EndTime != nil {
		fields["end_time"] = *changes.EndTime
	}
	if changes.Price != nil {
		fields["price"] = *changes.Price
	}
	if changes.Status != nil {
		fields["status"] = string(*changes.Status)
	}
	if changes.CancelledAt != nil {
		fields["cancelled_at"] = *changes.CancelledAt
	}
	if changes.CompletedAt != nil {
		fields["completed_at"] = *changes.CompletedAt
	}

	if len(fields) == 0 {
		return r.FindAppointmentByID(ctx, id)
	}

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(fields)

	if res.Error != nil {
		if httperr.IsExclusionConflict(res.Error) {
			return nil, httperr.ConflictErr(
				"time_conflict",
				"Barber has a conflict with this time slot",
			)
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return r.FindAppointmentByID(ctx, id)
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uuid.UUID,
) (bool, error) {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) FindAppointmentByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) FindByBarber(
	ctx context.Context,
	barberID uuid.UUID,
) ([]models.Appointment, error) {
	return r.findAllWhere(ctx, "barber_id = ?", barberID)
}

func (r *AppointmentGormRepository) FindByClient(
	ctx context.Context,
	clientID uuid.UUID,
) ([]models.Appointment, error) {
	return r.findAllWhere(ctx, "client_id = ?", clientID)
}

func (r *AppointmentGormRepository) FindByBarbershop(
	ctx context.Context,
	barbershopID uuid.UUID,
) ([]models.Appointment, error) {
	return r.findAllWhere(ctx, "barbershop_id = ?", barbershopID)
}

// list views are newest-first
func (r *AppointmentGormRepository) findAllWhere(
	ctx context.Context,
	query string,
	arg any,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(query, arg).
		Order("start_time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) FindByDateRange(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("start_time >= ? AND end_time <= ?", from, to).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) FindOverlapping(
	ctx context.Context,
	barberID uuid.UUID,
	start time.Time,
	end time.Time,
	excludeID *uuid.UUID,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"barber_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
			barberID,
			string(domain.StatusCancelled),
			end,
			start,
		)

	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var aps []models.Appointment
	if err := q.Order("start_time ASC").Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) PaginateAppointments(
	ctx context.Context,
	limit int,
	offset int,
) ([]models.Appointment, int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("start_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&aps).Error; err != nil {
		return nil, 0, err
	}

	return aps, total, nil
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWorkingHours(
	ctx context.Context,
	barberID uuid.UUID,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ?", barberID, weekday).
		First(&wh).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &wh, nil
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *AppointmentGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewAppointmentGormRepository(tx))
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
