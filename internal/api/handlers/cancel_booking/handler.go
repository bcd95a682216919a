package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/Agentronic/booking-agent-v2/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "invalid request body"
)

var (
	errMissingParams    = errors.New("missing required parameter: booking_id is required")
	errInvalidBookingID = errors.New("booking_id must be an integer")
)

// Request плоская карта полей tool-запроса
type Request struct {
	BookingID interface{} `json:"booking_id"`
}

// Response tool-ответ с результатом отмены.
// released=false означает, что бронирования с таким ID не существует,
// это штатный исход, а не ошибка.
type Response struct {
	Success  bool `json:"success"`
	Released bool `json:"released"`
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/tools/cancel_booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tools/cancel_booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.BookingID == nil {
		h.logger.Warn("POST /tools/cancel_booking - Missing booking_id")
		handlers.RespondBadRequest(w, errMissingParams.Error())
		return
	}

	bookingID, err := handlers.CoerceInt(req.BookingID)
	if err != nil {
		h.logger.Warn("POST /tools/cancel_booking - Invalid booking_id: %v", err)
		handlers.RespondBadRequest(w, errInvalidBookingID.Error())
		return
	}

	cancelled, err := h.service.CancelByID(r.Context(), int64(bookingID))
	if err != nil {
		h.logger.Error("POST /tools/cancel_booking - Failed to cancel booking: booking_id=%d, error=%v",
			bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /tools/cancel_booking - booking_id=%d, cancelled=%t", bookingID, cancelled)
	handlers.RespondJSON(w, http.StatusOK, Response{Success: true, Released: cancelled})
}
