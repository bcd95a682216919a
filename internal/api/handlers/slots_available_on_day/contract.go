package slots_available_on_day

import (
	"context"

	getDaySlots "github.com/Agentronic/booking-agent-v2/internal/usecase/get_day_slots"
)

// GetDaySlotsUseCase интерфейс use case перечисления свободных слотов дня
type GetDaySlotsUseCase interface {
	Execute(ctx context.Context, req *getDaySlots.Request) (*getDaySlots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
