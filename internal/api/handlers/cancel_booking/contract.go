package cancel_booking

import "context"

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	CancelByID(ctx context.Context, id int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
