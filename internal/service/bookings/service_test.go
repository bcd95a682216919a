package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agentronic/booking-agent-v2/internal/domain"
	bookingRepo "github.com/Agentronic/booking-agent-v2/internal/infra/storage/booking"
	"github.com/Agentronic/booking-agent-v2/pkg/types"
)

type fakeRepo struct {
	byID     map[int64]*domain.Booking
	byDate   map[string][]*domain.Booking
	repoErr  error
	deleted  []int64
	released []string
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.repoErr != nil {
		return nil, f.repoErr
	}
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	if f.repoErr != nil {
		return nil, f.repoErr
	}
	return f.byDate[date.Format(domain.DateFormat)], nil
}

func (f *fakeRepo) DeleteByID(_ context.Context, id int64) error {
	if f.repoErr != nil {
		return f.repoErr
	}
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRepo) DeleteByDateAndTime(_ context.Context, date time.Time, start types.TimeString) error {
	if f.repoErr != nil {
		return f.repoErr
	}
	key := date.Format(domain.DateFormat) + " " + start.String()
	for i, b := range f.byDate[date.Format(domain.DateFormat)] {
		if b.StartTime == start {
			f.byDate[date.Format(domain.DateFormat)] = append(
				f.byDate[date.Format(domain.DateFormat)][:i],
				f.byDate[date.Format(domain.DateFormat)][i+1:]...,
			)
			f.released = append(f.released, key)
			return nil
		}
	}
	return bookingRepo.ErrBookingNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

func seedRepo(t *testing.T) *fakeRepo {
	t.Helper()
	b, err := domain.NewBooking(testDate, "10:00", 60, "client-1", "consultation")
	require.NoError(t, err)
	b.ID = 42

	return &fakeRepo{
		byID:   map[int64]*domain.Booking{42: b},
		byDate: map[string][]*domain.Booking{testDate.Format(domain.DateFormat): {b}},
	}
}

func TestService_GetByID(t *testing.T) {
	svc := NewService(seedRepo(t), nopLogger{})

	t.Run("found", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.BookingID)
		assert.Equal(t, "2025-04-01", resp.Date)
		assert.Equal(t, "10:00", resp.StartTime)
		assert.Equal(t, "11:00", resp.EndTime)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_CancelByID(t *testing.T) {
	t.Run("existing booking is cancelled", func(t *testing.T) {
		repo := seedRepo(t)
		svc := NewService(repo, nopLogger{})

		cancelled, err := svc.CancelByID(context.Background(), 42)
		require.NoError(t, err)
		assert.True(t, cancelled)
		assert.Equal(t, []int64{42}, repo.deleted)
	})

	t.Run("absent booking is not an error", func(t *testing.T) {
		svc := NewService(seedRepo(t), nopLogger{})

		cancelled, err := svc.CancelByID(context.Background(), 99)
		require.NoError(t, err)
		assert.False(t, cancelled)
	})

	t.Run("cancel twice reports false the second time", func(t *testing.T) {
		svc := NewService(seedRepo(t), nopLogger{})

		cancelled, err := svc.CancelByID(context.Background(), 42)
		require.NoError(t, err)
		assert.True(t, cancelled)

		cancelled, err = svc.CancelByID(context.Background(), 42)
		require.NoError(t, err)
		assert.False(t, cancelled)
	})

	t.Run("storage failure is surfaced", func(t *testing.T) {
		svc := NewService(&fakeRepo{repoErr: errors.New("connection refused")}, nopLogger{})

		_, err := svc.CancelByID(context.Background(), 42)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_ReleaseByDateTime(t *testing.T) {
	t.Run("occupied slot is released", func(t *testing.T) {
		repo := seedRepo(t)
		svc := NewService(repo, nopLogger{})

		released, err := svc.ReleaseByDateTime(context.Background(), testDate, "10:00")
		require.NoError(t, err)
		assert.True(t, released)
	})

	t.Run("empty slot is not an error", func(t *testing.T) {
		svc := NewService(seedRepo(t), nopLogger{})

		released, err := svc.ReleaseByDateTime(context.Background(), testDate, "14:00")
		require.NoError(t, err)
		assert.False(t, released)
	})

	t.Run("malformed time is rejected", func(t *testing.T) {
		svc := NewService(seedRepo(t), nopLogger{})

		_, err := svc.ReleaseByDateTime(context.Background(), testDate, "2pm")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_ListByDate(t *testing.T) {
	svc := NewService(seedRepo(t), nopLogger{})

	t.Run("day with bookings", func(t *testing.T) {
		list, err := svc.ListByDate(context.Background(), testDate)
		require.NoError(t, err)
		require.Len(t, list.Bookings, 1)
		assert.Equal(t, "client-1", list.Bookings[0].ClientID)
	})

	t.Run("empty day yields empty list", func(t *testing.T) {
		list, err := svc.ListByDate(context.Background(), testDate.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Empty(t, list.Bookings)
	})
}
