package book_slot

import (
	"errors"
	"net/http"

	"github.com/Agentronic/booking-agent-v2/internal/api/handlers"
	"github.com/Agentronic/booking-agent-v2/internal/domain"
	bookSlot "github.com/Agentronic/booking-agent-v2/internal/usecase/book_slot"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSlotNotAvailable   = "the requested slot is not available"
	msgInvalidDuration    = "duration must be a positive multiple of 15 minutes"
	msgFieldTooLong       = "client_id must be 32 characters or less and service_name 100 characters or less"
	msgInvalidTimeSlot    = "the requested interval is invalid"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tools/book_slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tools/book_slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /tools/book_slot - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookSlot.ErrSlotNotAvailable):
			h.logger.Warn("POST /tools/book_slot - Slot not available: date=%s, time=%s",
				*req.Date, *req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, domain.ErrInvalidDuration):
			h.logger.Warn("POST /tools/book_slot - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, domain.ErrFieldTooLong):
			h.logger.Warn("POST /tools/book_slot - Field too long: %v", err)
			handlers.RespondBadRequest(w, msgFieldTooLong)

		case errors.Is(err, bookSlot.ErrInvalidTimeSlot):
			h.logger.Warn("POST /tools/book_slot - Invalid time slot: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, bookSlot.ErrInvalidInput):
			h.logger.Warn("POST /tools/book_slot - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /tools/book_slot - Failed to book slot: date=%s, time=%s, error=%v",
				*req.Date, *req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tools/book_slot - Booking created: booking_id=%d, date=%s, time=%s",
		result.ID, *req.Date, *req.Time)
	handlers.RespondJSON(w, http.StatusCreated, Response{
		Success:   true,
		Booked:    true,
		BookingID: result.ID,
	})
}
