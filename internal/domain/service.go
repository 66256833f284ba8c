package domain

import "time"

// Service represents a bookable offering with a fixed duration.
//
// RequiresStaff selects the occupancy model and never changes at runtime:
//   - true: staff-exclusive, one staff member holds at most one overlapping
//     confirmed booking (salon appointments);
//   - false: shared-capacity, overlapping bookings share Capacity seats
//     (restaurant tables).
type Service struct {
	ID              int64
	VenueID         int64
	Name            string
	Description     *string
	DurationMinutes int
	Price           float64
	Capacity        int
	RequiresStaff   bool
	IsActive        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StaffMember represents a person performing staff-exclusive services.
// The services a member can perform are linked through staff_services.
type StaffMember struct {
	ID       int64
	VenueID  int64
	Name     string
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
