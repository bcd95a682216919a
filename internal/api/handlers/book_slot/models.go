package book_slot

import (
	"errors"
	"time"

	"github.com/Agentronic/booking-agent-v2/internal/api/handlers"
	"github.com/Agentronic/booking-agent-v2/internal/domain"
	bookSlot "github.com/Agentronic/booking-agent-v2/internal/usecase/book_slot"
	"github.com/Agentronic/booking-agent-v2/pkg/types"
)

var (
	errMissingParams   = errors.New("missing required parameters: date, time, duration, client_id, and service_name are required")
	errInvalidDate     = errors.New("invalid date format, expected YYYY-MM-DD")
	errInvalidTime     = errors.New("invalid time format, expected HH:MM")
	errInvalidDuration = errors.New("duration must be an integer")
)

// Request плоская карта полей tool-запроса
type Request struct {
	Date        *string     `json:"date"`
	Time        *string     `json:"time"`
	Duration    interface{} `json:"duration"`
	ClientID    *string     `json:"client_id"`
	ServiceName *string     `json:"service_name"`
}

// Response tool-ответ с результатом бронирования
type Response struct {
	Success   bool  `json:"success"`
	Booked    bool  `json:"booked"`
	BookingID int64 `json:"booking_id"`
}

// ToUseCaseRequest validates field presence and converts the request into
// the use case model.
func (r *Request) ToUseCaseRequest() (*bookSlot.Request, error) {
	if r.Date == nil || r.Time == nil || r.Duration == nil || r.ClientID == nil || r.ServiceName == nil {
		return nil, errMissingParams
	}

	date, err := time.Parse(domain.DateFormat, *r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	start, err := types.NewTimeStringFromString(*r.Time)
	if err != nil {
		return nil, errInvalidTime
	}

	duration, err := handlers.CoerceInt(r.Duration)
	if err != nil {
		return nil, errInvalidDuration
	}

	return &bookSlot.Request{
		Date:            date,
		StartTime:       start,
		DurationMinutes: duration,
		ClientID:        *r.ClientID,
		ServiceName:     *r.ServiceName,
	}, nil
}
