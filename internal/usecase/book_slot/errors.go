package book_slot

import "errors"

var (
	// ErrSlotNotAvailable возвращается, когда запрошенный интервал
	// пересекается с существующим бронированием
	ErrSlotNotAvailable = errors.New("book_slot: slot is not available")

	// ErrInvalidTimeSlot возвращается, когда интервал некорректен,
	// например выходит за пределы суток
	ErrInvalidTimeSlot = errors.New("book_slot: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_slot: internal error")
)
