package find_next_slot

import "errors"

var (
	// ErrNoSlotAvailable возвращается, когда в пределах годового горизонта
	// не нашлось свободного слота
	ErrNoSlotAvailable = errors.New("find_next_slot: no available slot found within the next year")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("find_next_slot: invalid input data")
)
