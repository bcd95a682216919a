package book_slot

import (
	"time"

	"github.com/Agentronic/booking-agent-v2/pkg/types"
)

// Request модель запроса на бронирование слота
type Request struct {
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность в минутах, кратна 15
	ClientID        string           // Идентификатор клиента (до 32 символов)
	ServiceName     string           // Название услуги (до 100 символов)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	Date            time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время конца
	DurationMinutes int              // Длительность в минутах
	ClientID        string           // Идентификатор клиента
	ServiceName     string           // Название услуги
}
