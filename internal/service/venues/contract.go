package venues

import (
	"context"

	"github.com/simplyseat/reservation-service/internal/domain"
	"github.com/simplyseat/reservation-service/internal/integrations/geocoder"
)

// Logger интерфейс для логирования.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// VenueRepository доступ к заведениям.
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	List(ctx context.Context, filter domain.VenueFilter) ([]*domain.Venue, error)
}

// Geocoder переводит текстовый адрес в координаты.
type Geocoder interface {
	GeocodeWithGracefulDegradation(ctx context.Context, location string) (*geocoder.Coordinates, error)
}
