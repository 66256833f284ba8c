package domain

import "time"

// VenueType classifies a venue by the kind of business it runs.
type VenueType string

const (
	VenueTypeRestaurant VenueType = "restaurant"
	VenueTypeSalon      VenueType = "salon"
	VenueTypeSpa        VenueType = "spa"
	VenueTypeBar        VenueType = "bar"
)

// Venue represents a bookable business entity offering one or more services.
type Venue struct {
	ID          int64
	Name        string
	Type        VenueType
	Email       string
	Phone       string
	Address     string
	City        string
	PostalCode  string
	Country     string
	Description *string

	// BookingAdvanceHours is the minimum notice required between "now" and
	// a booking's start.
	BookingAdvanceHours int

	Latitude  *float64
	Longitude *float64
	IsActive  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCoordinates reports whether the venue has been geocoded.
func (v *Venue) HasCoordinates() bool {
	return v.Latitude != nil && v.Longitude != nil
}

// VenueFilter фильтр для поиска заведений
type VenueFilter struct {
	Type     *VenueType // Фильтр по типу заведения (опционально)
	Location string     // Город или префикс почтового индекса (опционально)
	Query    string     // Свободный поиск по названию и описанию (опционально)
}
