package domain

// Business validation constants
const (
	// MinPartySize and MaxPartySize bound online bookings. Larger groups
	// are asked to call the venue directly; the cap is a fixed business
	// policy, not configuration.
	MinPartySize = 1
	MaxPartySize = 8

	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// DefaultAvailabilityRangeMaxDays caps range availability queries (12 weeks).
const DefaultAvailabilityRangeMaxDays = 84

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
