package find_next_slot

import (
	"context"
	"time"

	"github.com/Agentronic/booking-agent-v2/internal/domain"
)

// scanForward walks the 15-minute grid starting at the first boundary at or
// after the requested instant, clamped into business hours, and returns the
// first point the checker reports free.
//
// Only the candidate start is bounded by business hours; whether the
// interval's end passes the 17:00 close is deliberately not checked,
// mirroring day enumeration.
//
// The scan gives up one year past the starting date. That bound is a safety
// valve against an unbounded loop, not a business rule.
func scanForward(ctx context.Context, checker AvailabilityChecker, req *Request) (*Response, error) {
	date := truncateToDay(req.AfterDate)
	horizon := date.AddDate(domain.SearchHorizonYears, 0, 0)

	// Кандидат выравнивается вверх до границы 15-минутной сетки
	candidate, err := req.AfterTime.RoundUpTo(domain.SlotStepMinutes)
	if err != nil {
		return nil, ErrNoSlotAvailable
	}

	for !date.After(horizon) {
		// Вне рабочих часов: до открытия — к 09:00 того же дня,
		// после закрытия — к 09:00 следующего дня
		if candidate.IsBefore(domain.BusinessDayStart) {
			candidate = domain.BusinessDayStart
		}
		if !candidate.IsBefore(domain.BusinessDayEnd) {
			date = date.AddDate(0, 0, 1)
			candidate = domain.BusinessDayStart
			continue
		}

		if checker.IsAvailable(ctx, date, candidate, req.DurationMinutes) {
			return &Response{Date: date, StartTime: candidate}, nil
		}

		next, err := candidate.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			// За пределы суток шагнуть нельзя, переходим на следующий день
			date = date.AddDate(0, 0, 1)
			candidate = domain.BusinessDayStart
			continue
		}
		candidate = next
	}

	return nil, ErrNoSlotAvailable
}

// truncateToDay отбрасывает компонент времени
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
