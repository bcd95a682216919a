package booking

import (
	"context"
	"fmt"
)

// schema таблицы bookings. UNIQUE (date, start_time) — последний рубеж
// против двойного бронирования одного и того же слота.
const schema = `
CREATE TABLE IF NOT EXISTS bookings (
    booking_id       BIGSERIAL PRIMARY KEY,
    date             DATE        NOT NULL,
    start_time       VARCHAR(5)  NOT NULL,
    end_time         VARCHAR(5)  NOT NULL,
    duration_minutes INTEGER     NOT NULL,
    client_id        VARCHAR(32) NOT NULL,
    service_name     VARCHAR(100) NOT NULL,
    UNIQUE (date, start_time)
)`

// EnsureSchema creates the bookings table if it does not exist yet.
// Called once at startup.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table: %v", ErrExecQuery, err)
	}
	return nil
}
