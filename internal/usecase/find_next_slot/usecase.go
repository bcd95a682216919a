package find_next_slot

import (
	"context"
	"fmt"

	"github.com/Agentronic/booking-agent-v2/internal/domain"
)

// UseCase use case поиска ближайшего свободного слота.
// Сканирует временную сетку вперед по 15 минут, опираясь только на
// AvailabilityChecker: семантика пересечения интервалов живет в одном месте.
type UseCase struct {
	checker AvailabilityChecker
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(checker AvailabilityChecker, logger Logger) *UseCase {
	return &UseCase{
		checker: checker,
		logger:  logger,
	}
}

// Execute выполняет поиск ближайшего свободного слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindNextSlot: after=%s %s, duration=%d",
		req.AfterDate.Format(domain.DateFormat), req.AfterTime, req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindNextSlot: validation failed: %v", err)
		return nil, err
	}

	result, err := scanForward(ctx, uc.checker, req)
	if err != nil {
		uc.logger.Info("FindNextSlot: no slot found after %s %s for %d minutes",
			req.AfterDate.Format(domain.DateFormat), req.AfterTime, req.DurationMinutes)
		return nil, err
	}

	uc.logger.Info("FindNextSlot: found slot %s %s",
		result.Date.Format(domain.DateFormat), result.StartTime)
	return result, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AfterDate.IsZero() {
		return fmt.Errorf("%w: after date is required", ErrInvalidInput)
	}

	if req.AfterTime.IsZero() {
		return fmt.Errorf("%w: after time is required", ErrInvalidInput)
	}

	if err := req.AfterTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid after time format: %v", ErrInvalidInput, err)
	}

	return domain.ValidateDuration(req.DurationMinutes)
}
