package domain

import "github.com/Agentronic/booking-agent-v2/pkg/types"

// Slot granularity constants
const (
	// SlotStepMinutes шаг сетки бронирования, все длительности кратны ему
	SlotStepMinutes = 15

	// DaySlotStepMinutes шаг перечисления слотов внутри рабочего дня
	DaySlotStepMinutes = 30
)

// Business hours: day enumeration and next-slot search operate inside
// the fixed [BusinessDayStart, BusinessDayEnd) window.
const (
	BusinessDayStart types.TimeString = "09:00"
	BusinessDayEnd   types.TimeString = "17:00"
)

// Field length limits
const (
	MaxClientIDLength    = 32
	MaxServiceNameLength = 100
)

// SearchHorizonYears ограничивает next-slot поиск, чтобы цикл был конечным.
// Это предохранитель, а не бизнес-правило.
const SearchHorizonYears = 1

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
