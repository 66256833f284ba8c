package bookings

import "errors"

var (
	// ErrBookingNotFound бронь не найдена.
	ErrBookingNotFound = errors.New("bookings: booking not found")
	// ErrAccessDenied запрашивающий не имеет доступа к брони.
	ErrAccessDenied = errors.New("bookings: access denied")
	// ErrCannotCancel бронь уже нельзя отменить в её текущем статусе.
	ErrCannotCancel = errors.New("bookings: booking cannot be cancelled")
	// ErrInvalidStatus недопустимый статус брони.
	ErrInvalidStatus = errors.New("bookings: invalid booking status")
	// ErrInternal внутренняя ошибка сервиса.
	ErrInternal = errors.New("bookings: internal error")
)
