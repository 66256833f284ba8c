package list_venues

import (
	"github.com/simplyseat/reservation-service/internal/service/venues"
)

// VenueResponse представление заведения в HTTP-ответе.
type VenueResponse struct {
	ID                  int64    `json:"id"`
	Name                string   `json:"name"`
	Type                string   `json:"type"`
	Description         *string  `json:"description,omitempty"`
	Address             string   `json:"address"`
	City                string   `json:"city"`
	PostalCode          string   `json:"postal_code"`
	BookingAdvanceHours int      `json:"booking_advance_hours"`
	Latitude            *float64 `json:"latitude,omitempty"`
	Longitude           *float64 `json:"longitude,omitempty"`
	DistanceKm          *float64 `json:"distance_km,omitempty"`
}

// ListVenuesResponse ответ со списком заведений.
type ListVenuesResponse struct {
	Venues []VenueResponse `json:"venues"`
}

func toResponse(found []*venues.VenueWithDistance) ListVenuesResponse {
	result := make([]VenueResponse, 0, len(found))
	for _, venue := range found {
		result = append(result, VenueResponse{
			ID:                  venue.ID,
			Name:                venue.Name,
			Type:                string(venue.Type),
			Description:         venue.Description,
			Address:             venue.Address,
			City:                venue.City,
			PostalCode:          venue.PostalCode,
			BookingAdvanceHours: venue.BookingAdvanceHours,
			Latitude:            venue.Latitude,
			Longitude:           venue.Longitude,
			DistanceKm:          venue.DistanceKm,
		})
	}
	return ListVenuesResponse{Venues: result}
}
