package venues

import "errors"

var (
	// ErrVenueNotFound заведение не найдено или неактивно.
	ErrVenueNotFound = errors.New("venues: venue not found")
	// ErrInternal внутренняя ошибка сервиса.
	ErrInternal = errors.New("venues: internal error")
)
