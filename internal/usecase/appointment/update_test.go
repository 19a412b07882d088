package appointment_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-book/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-book/internal/httperr"
	ucAppointment "github.com/BruksfildServices01/barber-book/internal/usecase/appointment"
)

func timePtr(t time.Time) *time.Time { return &t }

func statusPtr(s domain.Status) *domain.Status { return &s }

func TestUpdateAppointment_Reschedule(t *testing.T) {
	f := newFixture(t)
	uc := ucAppointment.NewUpdateAppointment(f.repo, nil)

	ap := f.book(t, slot(10, 0), slot(10, 30))

	updated, err := uc.Execute(context.Background(), ap.ID, ucAppointment.UpdateAppointmentInput{
		StartTime: timePtr(slot(14, 0)),
		EndTime:   timePtr(slot(14, 30)),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, slot(14, 0), updated.StartTime)
	assert.Equal(t, slot(14, 30), updated.EndTime)
}

func TestUpdateAppointment_SelfOverlapAllowed(t *testing.T) {
	f := newFixture(t)
	uc := ucAppointment.NewUpdateAppointment(f.repo, nil)

	ap := f.book(t, slot(10, 0), slot(11, 0))

	// Shifting inside its own window must not conflict with itself.
	updated, err := uc.Execute(context.Background(), ap.ID, ucAppointment.UpdateAppointmentInput{
		StartTime: timePtr(slot(10, 15)),
		EndTime:   timePtr(slot(11, 15)),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, slot(10, 15), updated.StartTime)
}

func TestUpdateAppointment_ConflictWithOther(t *testing.T) {
	f := newFixture(t)
	uc := ucAppointment.NewUpdateAppointment(f.repo, nil)

	f.book(t, slot(10, 0), slot(11, 0))
	ap := f.book(t, slot(12, 0), slot(13, 0))

	_, err := uc.Execute(context.Background(), ap.ID, ucAppointment.UpdateAppointmentInput{
		StartTime: timePtr(slot(10, 30)),
		EndTime:   timePtr(slot(11, 30)),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
}

func TestUpdateAppointment_PartialWindowPatch(t *testing.T) {
	f := newFixture(t)
	uc := ucAppointment.NewUpdateAppointment(f.repo, nil)

	ap := f.book(t, slot(10, 0), slot(11, 0))

	// Only the end moves; the stored start stays.
	updated, err := uc.Execute(context.Background(), ap.ID, ucAppointment.UpdateAppointmentInput{
		EndTime: timePtr(slot(11, 30)),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, slot(10, 0), updated.StartTime)
	assert.Equal(t, slot(11, 30), updated.EndTime)

	// A patch that inverts the effective window is rejected.
	_, err = uc.Execute(context.Background(), ap.ID, ucAppointment.UpdateAppointmentInput{
		EndTime: timePtr(slot(9, 0)),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_time_window"))
}

func TestUpdateAppointment_StatusTransitions(t *testing.T) {
	f := newFixture(t)
	uc := ucAppointment.NewUpdateAppointment(f.repo, nil)

	ap := f.book(t, slot(10, 0), slot(11, 0))

	updated, err := uc.Execute(context.Background(), ap.ID, ucAppointment.UpdateAppointmentInput{
		Status: statusPtr(domain.StatusConfirmed),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), updated.Status)

	// CONFIRMED cannot go back to SCHEDULED.
	_, err = uc.Execute(context.Background(), ap.ID, ucAppointment.UpdateAppointmentInput{
		Status: statusPtr(domain.StatusScheduled),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidState))

	updated, err = uc.Execute(context.Background(), ap.ID, ucAppointment.UpdateAppointmentInput{
		Status: statusPtr(domain.StatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), updated.Status)

	// COMPLETED is terminal.
	_, err = uc.Execute(context.Background(), ap.ID, ucAppointment.UpdateAppointmentInput{
		Status: statusPtr(domain.StatusCancelled),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidState))
}

func TestUpdateAppointment_StatusPatchSetsLifecycleTimestamps(t *testing.T) {
	f := newFixture(t)
	uc := ucAppointment.NewUpdateAppointment(f.repo, nil)

	// Cancelling through a patch leaves the same history the cancel
	// endpoint would.
	ap := f.book(t, slot(10, 0), slot(11, 0))
	updated, err := uc.Execute(context.Background(), ap.ID, ucAppointment.UpdateAppointmentInput{
		Status: statusPtr(domain.StatusCancelled),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), updated.Status)
	require.NotNil(t, updated.CancelledAt)

	stored, err := f.repo.FindAppointmentByID(context.Background(), ap.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotNil(t, stored.CancelledAt)

	ap = f.book(t, slot(12, 0), slot(13, 0))
	_, err = uc.Execute(context.Background(), ap.ID, ucAppointment.UpdateAppointmentInput{
		Status: statusPtr(domain.StatusConfirmed),
	})
	require.NoError(t, err)

	updated, err = uc.Execute(context.Background(), ap.ID, ucAppointment.UpdateAppointmentInput{
		Status: statusPtr(domain.StatusCompleted),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt)
	assert.Nil(t, updated.CancelledAt)
}

func TestUpdateAppointment_UnknownStatus(t *testing.T) {
	f := newFixture(t)
	uc := ucAppointment.NewUpdateAppointment(f.repo, nil)

	ap := f.book(t, slot(10, 0), slot(11, 0))

	_, err := uc.Execute(context.Background(), ap.ID, ucAppointment.UpdateAppointmentInput{
		Status: statusPtr(domain.Status("PENDING")),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestUpdateAppointment_ExplicitPriceChange(t *testing.T) {
	f := newFixture(t)
	uc := ucAppointment.NewUpdateAppointment(f.repo, nil)

	ap := f.book(t, slot(10, 0), slot(11, 0))

	price := decimal.NewFromFloat(20.00)
	updated, err := uc.Execute(context.Background(), ap.ID, ucAppointment.UpdateAppointmentInput{
		Price: &price,
	})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(price))
}

func TestUpdateAppointment_ServiceSwapKeepsPrice(t *testing.T) {
	f := newFixture(t)
	uc := ucAppointment.NewUpdateAppointment(f.repo, nil)

	ap := f.book(t, slot(10, 0), slot(11, 0))

	other := f.svc
	other.ID = uuid.New()
	other.Name = "Beard Trim"
	other.Price = decimal.NewFromFloat(15.00)
	f.repo.PutService(other)

	// The captured price only moves when the patch carries one.
	updated, err := uc.Execute(context.Background(), ap.ID, ucAppointment.UpdateAppointmentInput{
		ServiceID: &other.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, other.ID, updated.ServiceID)
	assert.True(t, updated.Price.Equal(f.svc.Price))
}

func TestUpdateAppointment_NotFound(t *testing.T) {
	f := newFixture(t)
	uc := ucAppointment.NewUpdateAppointment(f.repo, nil)

	_, err := uc.Execute(context.Background(), uuid.New(), ucAppointment.UpdateAppointmentInput{
		StartTime: timePtr(slot(10, 0)),
		EndTime:   timePtr(slot(11, 0)),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestUpdateAppointment_UnknownService(t *testing.T) {
	f := newFixture(t)
	uc := ucAppointment.NewUpdateAppointment(f.repo, nil)

	ap := f.book(t, slot(10, 0), slot(11, 0))

	missing := uuid.New()
	_, err := uc.Execute(context.Background(), ap.ID, ucAppointment.UpdateAppointmentInput{
		ServiceID: &missing,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}
