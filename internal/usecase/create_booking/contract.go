package create_booking

import (
	"context"

	"github.com/simplyseat/reservation-service/internal/domain"
	"github.com/simplyseat/reservation-service/internal/service/availability"
)

// Logger интерфейс для логирования.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TransactionManager выполняет функцию в сериализуемой транзакции.
// Конкурирующие брони одного слота сериализуются на уровне базы:
// проигравшая транзакция перечитает занятость и получит отказ валидации.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// BookingValidator многоступенчатая валидация запроса на бронирование.
type BookingValidator interface {
	ValidateBookingRequest(ctx context.Context, req availability.BookingRequest) (*availability.ValidationResult, error)
}

// BookingRepository создание брони.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}
