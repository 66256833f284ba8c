package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/simplyseat/reservation-service/internal/domain"
)

// ParseDateParam читает query-параметр с датой в формате YYYY-MM-DD.
func ParseDateParam(r *http.Request, name string) (time.Time, error) {
	return time.Parse(domain.DateFormat, r.URL.Query().Get(name))
}

// ParseOptionalInt64Param читает необязательный числовой query-параметр.
// Отсутствующий параметр возвращает nil без ошибки.
func ParseOptionalInt64Param(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// ParseOptionalIntParam читает необязательный int query-параметр.
// Отсутствующий параметр возвращает fallback.
func ParseOptionalIntParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
