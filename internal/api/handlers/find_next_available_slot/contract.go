package find_next_available_slot

import (
	"context"

	findNextSlot "github.com/Agentronic/booking-agent-v2/internal/usecase/find_next_slot"
)

// FindNextSlotUseCase интерфейс use case поиска ближайшего свободного слота
type FindNextSlotUseCase interface {
	Execute(ctx context.Context, req *findNextSlot.Request) (*findNextSlot.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
