package is_slot_available

import (
	"errors"
	"time"

	"github.com/Agentronic/booking-agent-v2/internal/api/handlers"
	"github.com/Agentronic/booking-agent-v2/internal/domain"
	"github.com/Agentronic/booking-agent-v2/pkg/types"
)

var (
	errMissingParams   = errors.New("missing required parameters: date, time, and duration are required")
	errInvalidDate     = errors.New("invalid date format, expected YYYY-MM-DD")
	errInvalidTime     = errors.New("invalid time format, expected HH:MM")
	errInvalidDuration = errors.New("duration must be an integer")
)

// Request плоская карта полей tool-запроса.
// Duration принимается и числом, и числовой строкой.
type Request struct {
	Date     *string     `json:"date"`
	Time     *string     `json:"time"`
	Duration interface{} `json:"duration"`
}

// Response tool-ответ с результатом проверки
type Response struct {
	Success   bool `json:"success"`
	Available bool `json:"available"`
}

// Parse validates field presence and coerces the request into engine types.
// A missing field is reported, never silently defaulted.
func (r *Request) Parse() (time.Time, types.TimeString, int, error) {
	if r.Date == nil || r.Time == nil || r.Duration == nil {
		return time.Time{}, "", 0, errMissingParams
	}

	date, err := time.Parse(domain.DateFormat, *r.Date)
	if err != nil {
		return time.Time{}, "", 0, errInvalidDate
	}

	start, err := types.NewTimeStringFromString(*r.Time)
	if err != nil {
		return time.Time{}, "", 0, errInvalidTime
	}

	duration, err := handlers.CoerceInt(r.Duration)
	if err != nil {
		return time.Time{}, "", 0, errInvalidDuration
	}

	return date, start, duration, nil
}
