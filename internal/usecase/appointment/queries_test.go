package appointment_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ucAppointment "github.com/BruksfildServices01/barber-book/internal/usecase/appointment"
)

func TestQueries_FindByID(t *testing.T) {
	f := newFixture(t)
	q := ucAppointment.NewAppointmentQueries(f.repo)

	ap := f.book(t, slot(10, 0), slot(11, 0))

	// Repeated reads return the same record unchanged.
	first, err := q.FindByID(context.Background(), ap.ID)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := q.FindByID(context.Background(), ap.ID)
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, *first, *second)
	assert.Equal(t, ap.ID, first.ID)
}

func TestQueries_FindByID_Missing(t *testing.T) {
	f := newFixture(t)
	q := ucAppointment.NewAppointmentQueries(f.repo)

	got, err := q.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestQueries_FindAll_Pagination(t *testing.T) {
	f := newFixture(t)
	q := ucAppointment.NewAppointmentQueries(f.repo)

	for i := 0; i < 5; i++ {
		f.book(t, slot(9+i, 0), slot(9+i, 30))
	}

	page1, total, err := q.FindAll(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, page1, 2)

	page3, total, err := q.FindAll(context.Background(), 3, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, page3, 1)

	// Past the last page comes back empty, not an error.
	page4, _, err := q.FindAll(context.Background(), 4, 2)
	require.NoError(t, err)
	assert.Empty(t, page4)

	// Newest first.
	assert.True(t, page1[0].StartTime.After(page1[1].StartTime))
}

func TestQueries_FindByBarberAndClient(t *testing.T) {
	f := newFixture(t)
	q := ucAppointment.NewAppointmentQueries(f.repo)

	f.book(t, slot(10, 0), slot(10, 30))
	f.book(t, slot(11, 0), slot(11, 30))

	byBarber, err := q.FindByBarber(context.Background(), f.barber.ID)
	require.NoError(t, err)
	assert.Len(t, byBarber, 2)

	byClient, err := q.FindByClient(context.Background(), f.client.ID)
	require.NoError(t, err)
	assert.Len(t, byClient, 2)

	none, err := q.FindByBarber(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestQueries_FindByDateRange(t *testing.T) {
	f := newFixture(t)
	q := ucAppointment.NewAppointmentQueries(f.repo)

	f.book(t, slot(9, 0), slot(9, 30))
	f.book(t, slot(12, 0), slot(12, 30))
	f.book(t, slot(18, 0), slot(18, 30))

	got, err := q.FindByDateRange(context.Background(), slot(11, 0), slot(13, 0))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, slot(12, 0), got[0].StartTime)

	all, err := q.FindByDateRange(context.Background(), slot(0, 0), slot(23, 59))
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Range results come back oldest first.
	assert.True(t, all[0].StartTime.Before(all[1].StartTime))
	assert.True(t, all[1].StartTime.Before(all[2].StartTime))
}
