package availability

import "errors"

var (
	// ErrVenueNotFound заведение не найдено или неактивно.
	ErrVenueNotFound = errors.New("availability: venue not found")
	// ErrServiceNotFound услуга не найдена или неактивна.
	ErrServiceNotFound = errors.New("availability: service not found")
	// ErrInvalidInput некорректные входные данные.
	ErrInvalidInput = errors.New("availability: invalid input")
	// ErrRangeTooLarge запрошенный диапазон дат превышает допустимый.
	ErrRangeTooLarge = errors.New("availability: date range too large")
	// ErrInternal внутренняя ошибка сервиса.
	ErrInternal = errors.New("availability: internal error")
)
