package find_next_slot

import (
	"context"
	"time"

	"github.com/Agentronic/booking-agent-v2/pkg/types"
)

// AvailabilityChecker интерфейс проверки доступности слота
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, date time.Time, start types.TimeString, duration int) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
