package create_booking

import (
	"context"

	"github.com/simplyseat/reservation-service/internal/domain"
	usecase "github.com/simplyseat/reservation-service/internal/usecase/create_booking"
)

type CreateBookingUsecase interface {
	Handle(ctx context.Context, req usecase.Request) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
