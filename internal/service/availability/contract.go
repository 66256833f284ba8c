package availability

import (
	"context"
	"time"

	"github.com/simplyseat/reservation-service/internal/domain"
)

// Logger интерфейс для логирования.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени.
// Позволяет подменять время в тестах.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider на основе системных часов.
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// VenueRepository доступ к заведениям.
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// CatalogRepository доступ к услугам и сотрудникам заведения.
type CatalogRepository interface {
	GetService(ctx context.Context, serviceID, venueID int64) (*domain.Service, error)
	GetStaffForService(ctx context.Context, serviceID int64) ([]*domain.StaffMember, error)
	CanStaffPerformService(ctx context.Context, staffMemberID, serviceID int64) (bool, error)
}

// RuleRepository доступ к правилам доступности.
type RuleRepository interface {
	GetVenueRulesForDay(ctx context.Context, venueID int64, dayOfWeek int) ([]*domain.AvailabilityRule, error)
	GetStaffRulesForDay(ctx context.Context, staffMemberID int64, dayOfWeek int) ([]*domain.AvailabilityRule, error)
	GetVenueRules(ctx context.Context, venueID int64) ([]*domain.AvailabilityRule, error)
	GetStaffRules(ctx context.Context, staffMemberIDs []int64) ([]*domain.AvailabilityRule, error)
}

// BookingRepository доступ к броням.
type BookingRepository interface {
	GetByVenueWithFilter(ctx context.Context, filter domain.VenueBookingsFilter) ([]*domain.Booking, error)
}
