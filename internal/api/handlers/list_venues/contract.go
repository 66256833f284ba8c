package list_venues

import (
	"context"

	"github.com/simplyseat/reservation-service/internal/domain"
	"github.com/simplyseat/reservation-service/internal/service/venues"
)

type VenueService interface {
	List(ctx context.Context, filter domain.VenueFilter) ([]*venues.VenueWithDistance, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
