package list_bookings

import (
	"net/http"
	"time"

	"github.com/Agentronic/booking-agent-v2/internal/api/handlers"
	"github.com/Agentronic/booking-agent-v2/internal/domain"
	"github.com/Agentronic/booking-agent-v2/internal/service/bookings/models"
)

const (
	msgMissingDate = "missing required query parameter: date"
	msgInvalidDate = "invalid date format, expected YYYY-MM-DD"
)

// Response ответ со списком бронирований за день
type Response struct {
	Success  bool                     `json:"success"`
	Date     string                   `json:"date"`
	Bookings []models.BookingResponse `json:"bookings"`
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

// Handle GET /api/v1/bookings?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /bookings - Missing date query parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	list, err := h.service.ListByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings for %s: %v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - %d bookings on %s", len(list.Bookings), rawDate)
	handlers.RespondJSON(w, http.StatusOK, Response{
		Success:  true,
		Date:     rawDate,
		Bookings: list.Bookings,
	})
}
