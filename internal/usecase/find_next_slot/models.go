package find_next_slot

import (
	"time"

	"github.com/Agentronic/booking-agent-v2/pkg/types"
)

// Request модель запроса на поиск ближайшего свободного слота
type Request struct {
	AfterDate       time.Time        // Дата, с которой начинается поиск
	AfterTime       types.TimeString // Время, с которого начинается поиск
	DurationMinutes int              // Требуемая длительность, кратна 15
}

// Response модель ответа с найденным слотом
type Response struct {
	Date      time.Time        // Дата свободного слота
	StartTime types.TimeString // Время начала свободного слота
}
