package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agentronic/booking-agent-v2/internal/domain"
	"github.com/Agentronic/booking-agent-v2/pkg/types"
)

type fakeRepo struct {
	bookings map[string][]*domain.Booking
	err      error
}

func (f *fakeRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings[date.Format(domain.DateFormat)], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustBooking(t *testing.T, date time.Time, start types.TimeString, duration int) *domain.Booking {
	t.Helper()
	b, err := domain.NewBooking(date, start, duration, "client-1", "consultation")
	require.NoError(t, err)
	return b
}

func TestChecker_IsAvailable(t *testing.T) {
	date := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	otherDate := date.AddDate(0, 0, 1)

	repo := &fakeRepo{bookings: map[string][]*domain.Booking{
		date.Format(domain.DateFormat): {mustBooking(t, date, "10:00", 60)},
	}}
	checker := NewChecker(repo, nopLogger{})

	tests := []struct {
		name     string
		date     time.Time
		start    types.TimeString
		duration int
		want     bool
	}{
		{name: "exact match is taken", date: date, start: "10:00", duration: 30, want: false},
		{name: "inside booking", date: date, start: "10:30", duration: 30, want: false},
		{name: "straddles booking start", date: date, start: "09:45", duration: 30, want: false},
		{name: "straddles booking end", date: date, start: "10:45", duration: 30, want: false},
		{name: "covers booking start", date: date, start: "09:30", duration: 60, want: false},
		{name: "covers whole booking", date: date, start: "10:00", duration: 90, want: false},
		{name: "long covering interval", date: date, start: "09:30", duration: 90, want: false},
		{name: "ends before booking", date: date, start: "09:00", duration: 45, want: true},
		{name: "back to back before", date: date, start: "09:30", duration: 30, want: true},
		{name: "back to back after", date: date, start: "11:00", duration: 30, want: true},
		{name: "same time other date", date: otherDate, start: "10:00", duration: 30, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checker.IsAvailable(context.Background(), tt.date, tt.start, tt.duration)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecker_IsAvailable_FailsClosed(t *testing.T) {
	date := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("storage error reads as unavailable", func(t *testing.T) {
		checker := NewChecker(&fakeRepo{err: errors.New("connection refused")}, nopLogger{})
		assert.False(t, checker.IsAvailable(context.Background(), date, "10:00", 30))
	})

	t.Run("malformed start time reads as unavailable", func(t *testing.T) {
		checker := NewChecker(&fakeRepo{}, nopLogger{})
		assert.False(t, checker.IsAvailable(context.Background(), date, "25:99", 30))
	})

	t.Run("interval past midnight reads as unavailable", func(t *testing.T) {
		checker := NewChecker(&fakeRepo{}, nopLogger{})
		assert.False(t, checker.IsAvailable(context.Background(), date, "23:45", 30))
	})
}

func TestChecker_CheckSlot(t *testing.T) {
	date := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	checker := NewChecker(&fakeRepo{}, nopLogger{})

	t.Run("valid duration passes through", func(t *testing.T) {
		available, err := checker.CheckSlot(context.Background(), date, "10:00", 30)
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("malformed duration is a caller error", func(t *testing.T) {
		_, err := checker.CheckSlot(context.Background(), date, "10:00", 17)
		assert.ErrorIs(t, err, domain.ErrInvalidDuration)
	})
}
