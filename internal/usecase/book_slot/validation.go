package book_slot

import (
	"fmt"

	"github.com/Agentronic/booking-agent-v2/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Проверки выполняются до любых обращений к хранилищу: при ошибке
// бронирование не оставляет никаких побочных эффектов.
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time format: %v", ErrInvalidInput, err)
	}

	if err := domain.ValidateDuration(req.DurationMinutes); err != nil {
		return err
	}

	if err := domain.ValidateIdentifiers(req.ClientID, req.ServiceName); err != nil {
		return err
	}

	// Интервал не должен выходить за пределы суток
	if _, err := req.StartTime.AddMinutes(req.DurationMinutes); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	return nil
}
