package book_slot

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agentronic/booking-agent-v2/internal/domain"
	bookingRepo "github.com/Agentronic/booking-agent-v2/internal/infra/storage/booking"
	"github.com/Agentronic/booking-agent-v2/pkg/types"
)

type fakeRepo struct {
	createErr error
	created   []*domain.Booking
	nextID    int64
}

func (f *fakeRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	stored := *b
	stored.ID = f.nextID
	f.created = append(f.created, &stored)
	return &stored, nil
}

type fakeChecker struct {
	available bool
	calls     int
}

func (f *fakeChecker) IsAvailable(context.Context, time.Time, types.TimeString, int) bool {
	f.calls++
	return f.available
}

// passthroughTxManager runs the function directly; transaction semantics are
// covered by the storage layer, the use case only needs the callback shape.
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		Date:            testDate,
		StartTime:       "10:00",
		DurationMinutes: 60,
		ClientID:        "client-1",
		ServiceName:     "consultation",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, &fakeChecker{available: true}, passthroughTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
	assert.Equal(t, 60, resp.DurationMinutes)
	require.Len(t, repo.created, 1)
}

func TestUseCase_Execute_SlotTaken(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, &fakeChecker{available: false}, passthroughTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, repo.created)
}

// A concurrent booking can slip between the availability check and the
// insert; the storage layer surfaces that as a duplicate or serialization
// error and the caller sees it as a taken slot.
func TestUseCase_Execute_LostRaceLooksLikeTakenSlot(t *testing.T) {
	for _, raceErr := range []error{bookingRepo.ErrDuplicateSlot, bookingRepo.ErrSerialization} {
		repo := &fakeRepo{createErr: raceErr}
		uc := NewUseCase(repo, &fakeChecker{available: true}, passthroughTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable, "create error %v", raceErr)
	}
}

func TestUseCase_Execute_StorageFailure(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("connection reset")}
	uc := NewUseCase(repo, &fakeChecker{available: true}, passthroughTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }, wantErr: ErrInvalidInput},
		{name: "missing start time", mutate: func(r *Request) { r.StartTime = "" }, wantErr: ErrInvalidInput},
		{name: "malformed start time", mutate: func(r *Request) { r.StartTime = "ten" }, wantErr: ErrInvalidInput},
		{name: "zero duration", mutate: func(r *Request) { r.DurationMinutes = 0 }, wantErr: domain.ErrInvalidDuration},
		{name: "off grid duration", mutate: func(r *Request) { r.DurationMinutes = 17 }, wantErr: domain.ErrInvalidDuration},
		{name: "client id too long", mutate: func(r *Request) { r.ClientID = strings.Repeat("a", 33) }, wantErr: domain.ErrFieldTooLong},
		{name: "interval past midnight", mutate: func(r *Request) { r.StartTime = "23:30"; r.DurationMinutes = 45 }, wantErr: ErrInvalidTimeSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			checker := &fakeChecker{available: true}
			uc := NewUseCase(repo, checker, passthroughTxManager{}, nopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			// Валидация отсекает запрос до любых обращений к хранилищу
			assert.Zero(t, checker.calls)
			assert.Empty(t, repo.created)
		})
	}
}
