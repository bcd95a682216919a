package get_day_slots

import "errors"

// ErrInvalidInput возвращается при некорректных входных данных
var ErrInvalidInput = errors.New("get_day_slots: invalid input data")
