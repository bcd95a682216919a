package release_slot

import (
	"errors"
	"net/http"
	"time"

	"github.com/Agentronic/booking-agent-v2/internal/api/handlers"
	"github.com/Agentronic/booking-agent-v2/internal/domain"
	"github.com/Agentronic/booking-agent-v2/pkg/types"
)

const (
	msgInvalidRequestBody = "invalid request body"
)

var (
	errMissingParams = errors.New("missing required parameters: date and time are required")
	errInvalidDate   = errors.New("invalid date format, expected YYYY-MM-DD")
	errInvalidTime   = errors.New("invalid time format, expected HH:MM")
)

// Request плоская карта полей tool-запроса
type Request struct {
	Date *string `json:"date"`
	Time *string `json:"time"`
}

// Response tool-ответ с результатом освобождения слота.
// released=false означает, что слот и так не был забронирован,
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

// Handle POST /api/v1/tools/release_slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tools/release_slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Date == nil || req.Time == nil {
		h.logger.Warn("POST /tools/release_slot - Missing parameters")
		handlers.RespondBadRequest(w, errMissingParams.Error())
		return
	}

	date, err := time.Parse(domain.DateFormat, *req.Date)
	if err != nil {
		h.logger.Warn("POST /tools/release_slot - Invalid date: %v", err)
		handlers.RespondBadRequest(w, errInvalidDate.Error())
		return
	}

	start, err := types.NewTimeStringFromString(*req.Time)
	if err != nil {
		h.logger.Warn("POST /tools/release_slot - Invalid time: %v", err)
		handlers.RespondBadRequest(w, errInvalidTime.Error())
		return
	}

	released, err := h.service.ReleaseByDateTime(r.Context(), date, start)
	if err != nil {
		h.logger.Error("POST /tools/release_slot - Failed to release slot: date=%s, time=%s, error=%v",
			*req.Date, *req.Time, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /tools/release_slot - date=%s, time=%s, released=%t", *req.Date, *req.Time, released)
	handlers.RespondJSON(w, http.StatusOK, Response{Success: true, Released: released})
}
