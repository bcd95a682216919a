package get_day_slots

import (
	"context"
	"fmt"

	"github.com/Agentronic/booking-agent-v2/internal/domain"
	"github.com/Agentronic/booking-agent-v2/pkg/types"
)

// UseCase use case перечисления свободных слотов внутри рабочего дня.
// Кандидаты идут по 30-минутной сетке от открытия до закрытия; каждый
// проверяется одним и тем же AvailabilityChecker, что и остальной движок.
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

// Execute возвращает свободные времена начала на указанный день.
//
// Кандидат, чей интервал выходит за время закрытия, из списка не
// исключается: день перечисляется по временам начала, а не по временам
// конца. Это референсное поведение, на него завязана совместимость.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: date=%s, duration=%d",
		req.Date.Format(domain.DateFormat), req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}

	slots := make([]types.TimeString, 0)

	for t := domain.BusinessDayStart; t.IsBefore(domain.BusinessDayEnd); {
		if uc.checker.IsAvailable(ctx, req.Date, t, req.DurationMinutes) {
			slots = append(slots, t)
		}

		next, err := t.AddMinutes(domain.DaySlotStepMinutes)
		if err != nil {
			break
		}
		t = next
	}

	uc.logger.Info("GetDaySlots: %d free slots on %s", len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return domain.ValidateDuration(req.DurationMinutes)
}
