package get_day_slots

import (
	"time"

	"github.com/Agentronic/booking-agent-v2/pkg/types"
)

// Request модель запроса на перечисление свободных слотов дня
type Request struct {
	Date            time.Time // Дата, на которую запрашиваются слоты
	DurationMinutes int       // Требуемая длительность, кратна 15
}

// Response модель ответа со списком свободных времен начала
type Response struct {
	Date  time.Time          // Дата, на которую запрашивались слоты
	Slots []types.TimeString // Свободные времена начала по возрастанию
}
