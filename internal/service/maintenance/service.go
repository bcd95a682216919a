package maintenance

import (
	"context"
	"fmt"
	"time"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	DeleteBefore(ctx context.Context, date time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service фоновая очистка календаря: удаляет бронирования, чья дата
// старше retention-периода. Запускается по cron-расписанию из main.
type Service struct {
	bookingRepo   BookingRepository
	retentionDays int
	logger        Logger
}

// NewService создает новый экземпляр сервиса очистки
func NewService(bookingRepo BookingRepository, retentionDays int, logger Logger) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// PurgeExpired удаляет бронирования старше retention-периода
func (s *Service) PurgeExpired(ctx context.Context) error {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)

	s.logger.Info("PurgeExpired: removing bookings dated before %s", cutoff.Format("2006-01-02"))

	removed, err := s.bookingRepo.DeleteBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error("PurgeExpired: failed to purge old bookings: %v", err)
		return fmt.Errorf("maintenance: purge expired bookings: %w", err)
	}

	if removed > 0 {
		s.logger.Info("PurgeExpired: removed %d old bookings", removed)
	}
	return nil
}
