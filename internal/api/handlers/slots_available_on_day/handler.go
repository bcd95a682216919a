package slots_available_on_day

import (
	"errors"
	"net/http"
	"time"

	"github.com/Agentronic/booking-agent-v2/internal/api/handlers"
	"github.com/Agentronic/booking-agent-v2/internal/domain"
	getDaySlots "github.com/Agentronic/booking-agent-v2/internal/usecase/get_day_slots"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDuration    = "duration must be a positive multiple of 15 minutes"
)

var (
	errMissingParams = errors.New("missing required parameters: date and duration are required")
	errInvalidDate   = errors.New("invalid date format, expected YYYY-MM-DD")
	errNotAnInteger  = errors.New("duration must be an integer")
)

// Request плоская карта полей tool-запроса
type Request struct {
	Date     *string     `json:"date"`
	Duration interface{} `json:"duration"`
}

// Response tool-ответ со списком свободных времен начала
type Response struct {
	Success bool     `json:"success"`
	Date    string   `json:"date"`
	Slots   []string `json:"slots"`
}

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tools/slots_available_on_day
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tools/slots_available_on_day - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.toUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /tools/slots_available_on_day - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDuration):
			h.logger.Warn("POST /tools/slots_available_on_day - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getDaySlots.ErrInvalidInput):
			h.logger.Warn("POST /tools/slots_available_on_day - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /tools/slots_available_on_day - Listing failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	slots := make([]string, 0, len(result.Slots))
	for _, s := range result.Slots {
		slots = append(slots, s.String())
	}

	h.logger.Info("POST /tools/slots_available_on_day - %d free slots on %s",
		len(slots), result.Date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, Response{
		Success: true,
		Date:    result.Date.Format(domain.DateFormat),
		Slots:   slots,
	})
}

func (r *Request) toUseCaseRequest() (*getDaySlots.Request, error) {
	if r.Date == nil || r.Duration == nil {
		return nil, errMissingParams
	}

	date, err := time.Parse(domain.DateFormat, *r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	duration, err := handlers.CoerceInt(r.Duration)
	if err != nil {
		return nil, errNotAnInteger
	}

	return &getDaySlots.Request{
		Date:            date,
		DurationMinutes: duration,
	}, nil
}
