package venues

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/simplyseat/reservation-service/internal/domain"
	"github.com/simplyseat/reservation-service/internal/integrations/geocoder"
	storageVenue "github.com/simplyseat/reservation-service/internal/infra/storage/venue"
)

// Service сервис каталога заведений с поиском по адресу.
type Service struct {
	repo     VenueRepository
	geocoder Geocoder
	log      Logger
	// radiusKm радиус поиска вокруг геокодированного адреса.
	radiusKm float64
}

// VenueWithDistance заведение с расстоянием от точки поиска.
// DistanceKm заполняется только при успешном геокодировании адреса.
type VenueWithDistance struct {
	*domain.Venue
	DistanceKm *float64
}

// NewService создаёт сервис заведений.
func NewService(repo VenueRepository, geo Geocoder, log Logger, radiusKm float64) *Service {
	return &Service{repo: repo, geocoder: geo, log: log, radiusKm: radiusKm}
}

// GetByID возвращает активное заведение.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	venue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storageVenue.ErrVenueNotFound) {
			return nil, ErrVenueNotFound
		}
		s.log.Error("[GetByID] Ошибка получения заведения %d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return venue, nil
}

// List возвращает активные заведения по фильтру. Если указан адрес, он
// геокодируется, результат сужается до радиуса поиска и сортируется по
// расстоянию. При недоступности геокодера поиск деградирует до списка
// без дистанционного фильтра.
func (s *Service) List(ctx context.Context, filter domain.VenueFilter) ([]*VenueWithDistance, error) {
	// 1. Загрузка по фильтрам хранилища
	venues, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("[List] Ошибка получения списка заведений: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	result := make([]*VenueWithDistance, 0, len(venues))
	for _, venue := range venues {
		result = append(result, &VenueWithDistance{Venue: venue})
	}
	if filter.Location == "" {
		return result, nil
	}

	// 2. Геокодирование адреса поиска
	coords, err := s.geocoder.GeocodeWithGracefulDegradation(ctx, filter.Location)
	if err != nil {
		if errors.Is(err, geocoder.ErrServiceDegraded) {
			s.log.Warn("[List] Геокодер недоступен, поиск без дистанционного фильтра: %v", err)
			return result, nil
		}
		if errors.Is(err, geocoder.ErrLocationNotFound) {
			s.log.Info("[List] Адрес %q не геокодирован, поиск без дистанционного фильтра", filter.Location)
			return result, nil
		}
		s.log.Error("[List] Ошибка геокодирования %q: %v", filter.Location, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Фильтр по радиусу и сортировка по расстоянию
	nearby := make([]*VenueWithDistance, 0, len(result))
	for _, venue := range result {
		if !venue.HasCoordinates() {
			continue
		}
		distance := haversineKm(coords.Latitude, coords.Longitude, *venue.Latitude, *venue.Longitude)
		if distance > s.radiusKm {
			continue
		}
		d := distance
		venue.DistanceKm = &d
		nearby = append(nearby, venue)
	}
	sort.Slice(nearby, func(i, j int) bool {
		return *nearby[i].DistanceKm < *nearby[j].DistanceKm
	})
	return nearby, nil
}

const earthRadiusKm = 6371.0

// haversineKm расстояние между двумя точками на сфере Земли.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
