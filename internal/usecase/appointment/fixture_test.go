package appointment_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-book/internal/infra/repository"
	"github.com/BruksfildServices01/barber-book/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-book/internal/usecase/appointment"
)

// fixture seeds an in-memory repository with one barbershop, one barber, one
// client and one 30-minute service.
type fixture struct {
	repo *repository.AppointmentMemoryRepository

	shop   models.Barbershop
	barber models.User
	client models.User
	svc    models.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		repo: repository.NewAppointmentMemoryRepository(),
	}

	f.shop = models.Barbershop{
		ID:   uuid.New(),
		Name: "Main Street Cuts",
		Slug: "main-street-cuts",
	}
	f.repo.PutBarbershop(f.shop)

	f.barber = models.User{
		ID:           uuid.New(),
		BarbershopID: &f.shop.ID,
		Name:         "Marco",
		Email:        "marco@example.com",
		Role:         models.RoleBarber,
	}
	f.repo.PutUser(f.barber)

	f.client = models.User{
		ID:    uuid.New(),
		Name:  "Lena",
		Email: "lena@example.com",
		Role:  models.RoleClient,
	}
	f.repo.PutUser(f.client)

	f.svc = models.Service{
		ID:              uuid.New(),
		BarbershopID:    f.shop.ID,
		Name:            "Haircut",
		Price:           decimal.NewFromFloat(35.00),
		DurationMinutes: 30,
	}
	f.repo.PutService(f.svc)

	return f
}

func (f *fixture) createInput(start, end time.Time) ucAppointment.CreateAppointmentInput {
	return ucAppointment.CreateAppointmentInput{
		BarberID:     f.barber.ID,
		ClientID:     f.client.ID,
		BarbershopID: f.shop.ID,
		ServiceID:    f.svc.ID,
		StartTime:    start,
		EndTime:      end,
	}
}

// book is a shortcut for tests that need an existing appointment.
func (f *fixture) book(t *testing.T, start, end time.Time) *models.Appointment {
	t.Helper()

	uc := ucAppointment.NewCreateAppointment(f.repo, nil)
	ap, err := uc.Execute(context.Background(), f.createInput(start, end))
	require.NoError(t, err)
	require.NotNil(t, ap)
	return ap
}

func slot(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
