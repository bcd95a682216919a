package is_slot_available

import (
	"context"
	"time"

	"github.com/Agentronic/booking-agent-v2/pkg/types"
)

// AvailabilityService интерфейс проверки доступности слота
type AvailabilityService interface {
	CheckSlot(ctx context.Context, date time.Time, start types.TimeString, duration int) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
