package list_bookings

import (
	"context"
	"time"

	"github.com/Agentronic/booking-agent-v2/internal/service/bookings/models"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	ListByDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
