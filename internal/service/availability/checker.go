package availability

import (
	"context"
	"time"

	"github.com/Agentronic/booking-agent-v2/internal/domain"
	"github.com/Agentronic/booking-agent-v2/pkg/types"
)

// Checker answers whether a candidate interval is free of overlaps.
// It is the single place in the engine that knows the overlap predicate;
// slot search and booking both go through it.
type Checker struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewChecker создает новый экземпляр проверки доступности
func NewChecker(bookingRepo BookingRepository, logger Logger) *Checker {
	return &Checker{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// IsAvailable reports whether [start, start+duration) on the given date is
// free of any stored booking. Two half-open intervals overlap iff
// S < Be && E > Bs; back-to-back intervals are not an overlap.
//
// The check fails closed: any parse, arithmetic or storage error is treated
// as "not available". A false negative keeps a free slot unbooked for now,
// a false positive would double-book.
func (c *Checker) IsAvailable(ctx context.Context, date time.Time, start types.TimeString, duration int) bool {
	if err := start.Validate(); err != nil {
		c.logger.Warn("IsAvailable: invalid start time %q: %v", start, err)
		return false
	}

	end, err := start.AddMinutes(duration)
	if err != nil {
		c.logger.Warn("IsAvailable: cannot compute interval end for %s + %dm: %v", start, duration, err)
		return false
	}

	bookings, err := c.bookingRepo.GetByDate(ctx, date)
	if err != nil {
		c.logger.Error("IsAvailable: failed to get bookings for %s, treating slot as unavailable: %v",
			date.Format(domain.DateFormat), err)
		return false
	}

	for _, b := range bookings {
		if b.Overlaps(start, end) {
			return false
		}
	}

	return true
}

// CheckSlot is the validated form of IsAvailable used by the tool surface:
// a malformed duration is a caller error and is reported as such, not
// folded into "unavailable".
func (c *Checker) CheckSlot(ctx context.Context, date time.Time, start types.TimeString, duration int) (bool, error) {
	if err := domain.ValidateDuration(duration); err != nil {
		return false, err
	}
	return c.IsAvailable(ctx, date, start, duration), nil
}
