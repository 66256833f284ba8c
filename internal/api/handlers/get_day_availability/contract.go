package get_day_availability

import (
	"context"

	"github.com/simplyseat/reservation-service/internal/domain"
	"github.com/simplyseat/reservation-service/internal/service/availability"
)

type AvailabilityService interface {
	GetDayAvailability(ctx context.Context, query availability.DayQuery) (*domain.DayAvailability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
