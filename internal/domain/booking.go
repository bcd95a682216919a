package domain

import (
	"time"

	"github.com/Agentronic/booking-agent-v2/pkg/types"
)

// Booking represents a booked slot on the business calendar.
// The calendar manages a single implicit resource, so a booking is keyed
// by (Date, StartTime) for overlap purposes and by ID externally.
type Booking struct {
	ID              int64
	Date            time.Time // день бронирования, время внутри суток не используется
	StartTime       types.TimeString
	EndTime         types.TimeString // всегда StartTime + DurationMinutes, хранится денормализованно
	DurationMinutes int
	ClientID        string
	ServiceName     string
}

// NewBooking builds a Booking with EndTime derived from StartTime and the
// duration. EndTime is never set independently.
func NewBooking(date time.Time, start types.TimeString, duration int, clientID, serviceName string) (*Booking, error) {
	end, err := start.AddMinutes(duration)
	if err != nil {
		return nil, err
	}
	return &Booking{
		Date:            date,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: duration,
		ClientID:        clientID,
		ServiceName:     serviceName,
	}, nil
}

// Overlaps reports whether the booking's half-open interval intersects
// [start, end) on the same date. Back-to-back intervals do not overlap.
func (b *Booking) Overlaps(start, end types.TimeString) bool {
	return b.StartTime.IsBefore(end) && b.EndTime.IsAfter(start)
}
