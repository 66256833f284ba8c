package create_booking

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput некорректные входные данные запроса.
	ErrInvalidInput = errors.New("create_booking: invalid input")
	// ErrInternal внутренняя ошибка usecase.
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError отказ валидации запроса на бронирование.
// Messages содержит все найденные проблемы.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "create_booking: validation failed: " + strings.Join(e.Messages, "; ")
}
