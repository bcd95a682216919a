package find_next_available_slot

import (
	"errors"
	"net/http"
	"time"

	"github.com/Agentronic/booking-agent-v2/internal/api/handlers"
	"github.com/Agentronic/booking-agent-v2/internal/domain"
	findNextSlot "github.com/Agentronic/booking-agent-v2/internal/usecase/find_next_slot"
	"github.com/Agentronic/booking-agent-v2/pkg/types"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNoSlotFound        = "no available slot found within the next year"
	msgInvalidDuration    = "duration must be a positive multiple of 15 minutes"
)

var (
	errMissingParams = errors.New("missing required parameters: after_date, after_time, and duration are required")
	errInvalidDate   = errors.New("invalid after_date format, expected YYYY-MM-DD")
	errInvalidTime   = errors.New("invalid after_time format, expected HH:MM")
	errNotAnInteger  = errors.New("duration must be an integer")
)

// Request плоская карта полей tool-запроса
type Request struct {
	AfterDate *string     `json:"after_date"`
	AfterTime *string     `json:"after_time"`
	Duration  interface{} `json:"duration"`
}

// Response tool-ответ с найденным слотом
type Response struct {
	Success bool   `json:"success"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

type Handler struct {
	useCase FindNextSlotUseCase
	logger  Logger
}

func NewHandler(useCase FindNextSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tools/find_next_available_slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tools/find_next_available_slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.toUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /tools/find_next_available_slot - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findNextSlot.ErrNoSlotAvailable):
			h.logger.Info("POST /tools/find_next_available_slot - No slot found after %s %s",
				*req.AfterDate, *req.AfterTime)
			handlers.RespondNotFound(w, msgNoSlotFound)

		case errors.Is(err, domain.ErrInvalidDuration):
			h.logger.Warn("POST /tools/find_next_available_slot - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, findNextSlot.ErrInvalidInput):
			h.logger.Warn("POST /tools/find_next_available_slot - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /tools/find_next_available_slot - Search failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tools/find_next_available_slot - Found slot %s %s",
		result.Date.Format(domain.DateFormat), result.StartTime)
	handlers.RespondJSON(w, http.StatusOK, Response{
		Success: true,
		Date:    result.Date.Format(domain.DateFormat),
		Time:    result.StartTime.String(),
	})
}

func (r *Request) toUseCaseRequest() (*findNextSlot.Request, error) {
	if r.AfterDate == nil || r.AfterTime == nil || r.Duration == nil {
		return nil, errMissingParams
	}

	afterDate, err := time.Parse(domain.DateFormat, *r.AfterDate)
	if err != nil {
		return nil, errInvalidDate
	}

	afterTime, err := types.NewTimeStringFromString(*r.AfterTime)
	if err != nil {
		return nil, errInvalidTime
	}

	duration, err := handlers.CoerceInt(r.Duration)
	if err != nil {
		return nil, errNotAnInteger
	}

	return &findNextSlot.Request{
		AfterDate:       afterDate,
		AfterTime:       afterTime,
		DurationMinutes: duration,
	}, nil
}
