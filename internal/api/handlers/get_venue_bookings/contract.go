package get_venue_bookings

import (
	"context"

	"github.com/simplyseat/reservation-service/internal/domain"
)

type BookingService interface {
	GetVenueBookings(ctx context.Context, filter domain.VenueBookingsFilter) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
