package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Agentronic/booking-agent-v2/internal/domain"
	bookingRepo "github.com/Agentronic/booking-agent-v2/internal/infra/storage/booking"
	"github.com/Agentronic/booking-agent-v2/internal/service/bookings/models"
	"github.com/Agentronic/booking-agent-v2/pkg/types"
)

// Service сервис для работы с существующими бронированиями:
// получение, отмена, освобождение слота, список за день
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// CancelByID removes the booking with the given ID and reports whether a
// booking was actually removed. A missing booking is a normal outcome
// (cancelled == false), not an error; storage failures are surfaced.
func (s *Service) CancelByID(ctx context.Context, id int64) (bool, error) {
	err := s.bookingRepo.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Info("CancelByID: booking id=%d does not exist, nothing to cancel", id)
			return false, nil
		}
		s.logger.Error("CancelByID: repository error for booking id=%d: %v", id, err)
		return false, fmt.Errorf("%w: CancelByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CancelByID: booking id=%d cancelled", id)
	return true, nil
}

// ReleaseByDateTime removes the booking occupying the (date, start_time)
// slot key. Same semantics as CancelByID: absence is not an error.
func (s *Service) ReleaseByDateTime(ctx context.Context, date time.Time, start types.TimeString) (bool, error) {
	if err := start.Validate(); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err := s.bookingRepo.DeleteByDateAndTime(ctx, date, start)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Info("ReleaseByDateTime: no booking at %s %s, nothing to release",
				date.Format(domain.DateFormat), start)
			return false, nil
		}
		s.logger.Error("ReleaseByDateTime: repository error for %s %s: %v",
			date.Format(domain.DateFormat), start, err)
		return false, fmt.Errorf("%w: ReleaseByDateTime - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ReleaseByDateTime: released slot %s %s", date.Format(domain.DateFormat), start)
	return true, nil
}

// ListByDate получает все бронирования на день, отсортированные по времени начала
func (s *Service) ListByDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListByDate: repository error for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}
