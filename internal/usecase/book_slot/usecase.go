package book_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/Agentronic/booking-agent-v2/internal/domain"
	bookingRepo "github.com/Agentronic/booking-agent-v2/internal/infra/storage/booking"
)

// UseCase use case бронирования слота.
// Проверка доступности и вставка выполняются в одной сериализуемой
// транзакции, поэтому две конкурентные брони на пересекающиеся интервалы
// не могут пройти обе.
type UseCase struct {
	bookingRepo BookingRepository
	checker     AvailabilityChecker
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	checker AvailabilityChecker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		checker:     checker,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case бронирования слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: date=%s, time=%s, duration=%d, client=%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes, req.ClientID)

	// 1. Валидация входных данных, без побочных эффектов при ошибке
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Проверка доступности и вставка в одной транзакции.
	// GetByDate внутри проверки блокирует строки дня (FOR UPDATE),
	// UNIQUE (date, start_time) страхует от точного дубликата.
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if !uc.checker.IsAvailable(txCtx, req.Date, req.StartTime, req.DurationMinutes) {
			uc.logger.Warn("BookSlot: slot %s %s (%dm) is not available",
				req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)
			return ErrSlotNotAvailable
		}

		booking, err := domain.NewBooking(req.Date, req.StartTime, req.DurationMinutes, req.ClientID, req.ServiceName)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Проигрыш гонки двум конкурентным броням выглядит для
			// вызывающего так же, как занятый слот
			if errors.Is(err, bookingRepo.ErrDuplicateSlot) || errors.Is(err, bookingRepo.ErrSerialization) {
				uc.logger.Warn("BookSlot: lost race for slot %s %s: %v",
					req.Date.Format(domain.DateFormat), req.StartTime, err)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("BookSlot: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookSlot: successfully created booking id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: result.DurationMinutes,
		ClientID:        result.ClientID,
		ServiceName:     result.ServiceName,
	}, nil
}
