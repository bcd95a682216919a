package release_slot

import (
	"context"
	"time"

	"github.com/Agentronic/booking-agent-v2/pkg/types"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	ReleaseByDateTime(ctx context.Context, date time.Time, start types.TimeString) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
