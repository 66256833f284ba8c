package get_range_availability

import (
	"context"

	"github.com/simplyseat/reservation-service/internal/domain"
	"github.com/simplyseat/reservation-service/internal/service/availability"
)

type AvailabilityService interface {
	GetRangeAvailability(ctx context.Context, query availability.RangeQuery) ([]*domain.DayAvailability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
