package maintenance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	removed   int64
	err       error
	gotCutoff time.Time
}

func (f *fakeRepo) DeleteBefore(_ context.Context, date time.Time) (int64, error) {
	f.gotCutoff = date
	return f.removed, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_PurgeExpired(t *testing.T) {
	t.Run("cutoff respects retention period", func(t *testing.T) {
		repo := &fakeRepo{removed: 3}
		svc := NewService(repo, 90, nopLogger{})

		require.NoError(t, svc.PurgeExpired(context.Background()))

		want := time.Now().AddDate(0, 0, -90)
		assert.WithinDuration(t, want, repo.gotCutoff, time.Minute)
	})

	t.Run("storage failure is surfaced", func(t *testing.T) {
		svc := NewService(&fakeRepo{err: errors.New("connection refused")}, 90, nopLogger{})

		assert.Error(t, svc.PurgeExpired(context.Background()))
	})
}
