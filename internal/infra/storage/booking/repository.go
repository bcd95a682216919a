package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Agentronic/booking-agent-v2/internal/domain"
	"github.com/Agentronic/booking-agent-v2/pkg/psqlbuilder"
	"github.com/Agentronic/booking-agent-v2/pkg/txmanager"
	"github.com/Agentronic/booking-agent-v2/pkg/types"
)

const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking and fills in its generated ID.
// The caller is expected to have confirmed availability already; the
// UNIQUE(date, start_time) index is the integrity backstop and surfaces
// as ErrDuplicateSlot when two callers race past that check.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"date",
			"start_time",
			"end_time",
			"duration_minutes",
			"client_id",
			"service_name",
		).
		Values(
			b.Date,
			b.StartTime,
			b.EndTime,
			b.DurationMinutes,
			b.ClientID,
			b.ServiceName,
		).
		Suffix("RETURNING booking_id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", mapPgError(err), err)
	}

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := selectBookings().
		Where(squirrel.Eq{"booking_id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.Date,
		&b.StartTime,
		&b.EndTime,
		&b.DurationMinutes,
		&b.ClientID,
		&b.ServiceName,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return &b, nil
}

// GetByDate returns all bookings for the given calendar day ordered by
// start_time ascending. An empty day yields an empty slice, never nil.
// Inside a managed transaction the rows are locked FOR UPDATE so a
// check-then-insert sequence sees a stable view of the day.
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	selectBuilder := selectBookings().
		Where(squirrel.Eq{"date": dateOnly(date)}).
		OrderBy("start_time ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// DeleteByID удаляет бронирование по ID.
// Возвращает ErrBookingNotFound, если записи не существует.
func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"booking_id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// DeleteByDateAndTime удаляет бронирование по ключу слота (date, start_time).
// Возвращает ErrBookingNotFound, если слот не был забронирован.
func (r *Repository) DeleteByDateAndTime(ctx context.Context, date time.Time, start types.TimeString) error {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"date": dateOnly(date), "start_time": start}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByDateAndTime - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByDateAndTime - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByDateAndTime - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// DeleteBefore purges bookings dated strictly before the given day.
// Used by the retention job; returns the number of removed rows.
func (r *Repository) DeleteBefore(ctx context.Context, date time.Time) (int64, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Lt{"date": dateOnly(date)}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBefore - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBefore - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBefore - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// selectBookings базовый SELECT со всеми колонками таблицы bookings
func selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"booking_id",
		"date",
		"start_time",
		"end_time",
		"duration_minutes",
		"client_id",
		"service_name",
	).From("bookings")
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		err := rows.Scan(
			&b.ID,
			&b.Date,
			&b.StartTime,
			&b.EndTime,
			&b.DurationMinutes,
			&b.ClientID,
			&b.ServiceName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// dateOnly отбрасывает компонент времени, в таблице хранится только дата
func dateOnly(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// mapPgError классифицирует ошибки PostgreSQL по кодам
func mapPgError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case pgUniqueViolation:
			return ErrDuplicateSlot
		case pgSerializationFailure:
			return ErrSerialization
		}
	}
	return ErrExecQuery
}
