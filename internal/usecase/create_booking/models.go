package create_booking

import "time"

// Request параметры создания брони.
type Request struct {
	UserID        int64
	VenueID       int64
	ServiceID     int64
	StaffMemberID *int64
	Date          time.Time
	// StartTime и EndTime в формате HH:MM.
	StartTime string
	EndTime   string
	PartySize int
	Notes     string
	// BypassAdvanceCheck пропустить проверку минимального срока до брони.
	BypassAdvanceCheck bool
}
