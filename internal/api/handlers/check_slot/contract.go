package check_slot

import (
	"context"

	"github.com/simplyseat/reservation-service/internal/service/availability"
)

type AvailabilityService interface {
	CheckSlot(ctx context.Context, query availability.SlotQuery) (*availability.SlotCheck, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
