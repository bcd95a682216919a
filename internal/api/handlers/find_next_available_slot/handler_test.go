package find_next_available_slot

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	findNextSlot "github.com/Agentronic/booking-agent-v2/internal/usecase/find_next_slot"
)

type fakeUseCase struct {
	resp *findNextSlot.Response
	err  error
}

func (f *fakeUseCase) Execute(context.Context, *findNextSlot.Request) (*findNextSlot.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, raw string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/find_next_available_slot", bytes.NewReader([]byte(raw)))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	t.Run("slot found", func(t *testing.T) {
		uc := &fakeUseCase{resp: &findNextSlot.Response{
			Date:      time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
			StartTime: "09:00",
		}}
		h := NewHandler(uc, nopLogger{})

		rec := doRequest(t, h, `{"after_date": "2025-04-01", "after_time": "17:00", "duration": 30}`)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "2025-04-02", body["date"])
		assert.Equal(t, "09:00", body["time"])
	})

	t.Run("exhausted horizon maps to not found", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{err: findNextSlot.ErrNoSlotAvailable}, nopLogger{})

		rec := doRequest(t, h, `{"after_date": "2025-04-01", "after_time": "09:00", "duration": 30}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "no available slot found within the next year", body["error"])
	})

	t.Run("missing parameter", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{}, nopLogger{})

		rec := doRequest(t, h, `{"after_date": "2025-04-01", "duration": 30}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad after_time", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{}, nopLogger{})

		rec := doRequest(t, h, `{"after_date": "2025-04-01", "after_time": "5pm", "duration": 30}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
