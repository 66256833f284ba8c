package geocoder

import "errors"

var (
	// ErrLocationNotFound возвращается, когда геокодер не нашел координаты
	ErrLocationNotFound = errors.New("geocoder client: location not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("geocoder client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("geocoder client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что геокодер недоступен и фильтрацию по расстоянию
	// следует пропустить
	ErrServiceDegraded = errors.New("geocoder unavailable: graceful degradation applied")
)
