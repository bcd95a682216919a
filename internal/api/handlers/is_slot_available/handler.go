package is_slot_available

import (
	"errors"
	"net/http"

	"github.com/Agentronic/booking-agent-v2/internal/api/handlers"
	"github.com/Agentronic/booking-agent-v2/internal/domain"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDuration    = "duration must be a positive multiple of 15 minutes"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/tools/is_slot_available
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tools/is_slot_available - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, start, duration, err := req.Parse()
	if err != nil {
		h.logger.Warn("POST /tools/is_slot_available - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	available, err := h.service.CheckSlot(r.Context(), date, start, duration)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDuration):
			h.logger.Warn("POST /tools/is_slot_available - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
		default:
			h.logger.Error("POST /tools/is_slot_available - Check failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{Success: true, Available: available})
}
