package appointment_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-book/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-book/internal/httperr"
	ucAppointment "github.com/BruksfildServices01/barber-book/internal/usecase/appointment"
)

func TestCreateAppointment_Success(t *testing.T) {
	f := newFixture(t)
	uc := ucAppointment.NewCreateAppointment(f.repo, nil)

	ap, err := uc.Execute(context.Background(), f.createInput(slot(10, 0), slot(10, 30)))
	require.NoError(t, err)
	require.NotNil(t, ap)

	assert.NotEqual(t, uuid.Nil, ap.ID)
	assert.Equal(t, string(domain.StatusScheduled), ap.Status)
	assert.True(t, ap.Price.Equal(f.svc.Price))
	assert.Equal(t, f.barber.ID, ap.BarberID)
	assert.Equal(t, f.client.ID, ap.ClientID)
}

func TestCreateAppointment_SequentialNonOverlapping(t *testing.T) {
	f := newFixture(t)

	f.book(t, slot(9, 0), slot(9, 30))
	f.book(t, slot(10, 0), slot(10, 30))
	f.book(t, slot(11, 0), slot(11, 30))

	aps, err := f.repo.FindByBarber(context.Background(), f.barber.ID)
	require.NoError(t, err)
	assert.Len(t, aps, 3)
}

func TestCreateAppointment_Overlap(t *testing.T) {
	f := newFixture(t)
	uc := ucAppointment.NewCreateAppointment(f.repo, nil)

	f.book(t, slot(10, 0), slot(11, 0))

	cases := []struct {
		name       string
		start, end int // minutes past 09:00
	}{
		{"identical", 60, 120},
		{"starts inside", 90, 150},
		{"ends inside", 30, 90},
		{"contains", 30, 150},
		{"contained", 75, 105},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), f.createInput(
				slot(9, 0).Add(minutes(tc.start)),
				slot(9, 0).Add(minutes(tc.end)),
			))
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, "time_conflict"))
		})
	}
}

func TestCreateAppointment_BackToBack(t *testing.T) {
	f := newFixture(t)

	f.book(t, slot(10, 0), slot(11, 0))

	// Sharing a boundary instant is not an overlap.
	f.book(t, slot(11, 0), slot(12, 0))
	f.book(t, slot(9, 0), slot(10, 0))
}

func TestCreateAppointment_CancelledSlotIsFree(t *testing.T) {
	f := newFixture(t)

	ap := f.book(t, slot(10, 0), slot(11, 0))

	cancelUC := ucAppointment.NewCancelAppointment(f.repo, nil)
	_, err := cancelUC.Execute(context.Background(), ap.ID)
	require.NoError(t, err)

	f.book(t, slot(10, 0), slot(11, 0))
}

func TestCreateAppointment_InvalidTimeWindow(t *testing.T) {
	f := newFixture(t)
	uc := ucAppointment.NewCreateAppointment(f.repo, nil)

	_, err := uc.Execute(context.Background(), f.createInput(slot(11, 0), slot(10, 0)))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_time_window"))

	// Zero-length windows are rejected too.
	_, err = uc.Execute(context.Background(), f.createInput(slot(10, 0), slot(10, 0)))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_time_window"))
}

func TestCreateAppointment_MissingReferences(t *testing.T) {
	f := newFixture(t)
	uc := ucAppointment.NewCreateAppointment(f.repo, nil)

	t.Run("service not found", func(t *testing.T) {
		in := f.createInput(slot(10, 0), slot(10, 30))
		in.ServiceID = uuid.New()
		_, err := uc.Execute(context.Background(), in)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "service_not_found"))
	})

	t.Run("barber not found", func(t *testing.T) {
		in := f.createInput(slot(10, 0), slot(10, 30))
		in.BarberID = uuid.New()
		_, err := uc.Execute(context.Background(), in)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
	})

	t.Run("client not found", func(t *testing.T) {
		in := f.createInput(slot(10, 0), slot(10, 30))
		in.ClientID = uuid.New()
		_, err := uc.Execute(context.Background(), in)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "client_not_found"))
	})
}

func TestCreateAppointment_BarberNotInBarbershop(t *testing.T) {
	f := newFixture(t)
	uc := ucAppointment.NewCreateAppointment(f.repo, nil)

	in := f.createInput(slot(10, 0), slot(10, 30))
	in.BarbershopID = uuid.New()

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidAssociation))

	be, _ := httperr.AsBusiness(err)
	assert.Equal(t, "Barber does not work at this barbershop", be.Message)
}

func TestCreateAppointment_PriceCapturedAtBooking(t *testing.T) {
	f := newFixture(t)

	ap := f.book(t, slot(10, 0), slot(10, 30))
	require.True(t, ap.Price.Equal(decimal.NewFromFloat(35.00)))

	// Raising the catalog price must not touch the existing booking.
	f.svc.Price = decimal.NewFromFloat(50.00)
	f.repo.PutService(f.svc)

	stored, err := f.repo.FindAppointmentByID(context.Background(), ap.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Price.Equal(decimal.NewFromFloat(35.00)))

	// New bookings pick up the new price.
	second := f.book(t, slot(11, 0), slot(11, 30))
	assert.True(t, second.Price.Equal(decimal.NewFromFloat(50.00)))
}
