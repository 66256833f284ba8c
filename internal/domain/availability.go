package domain

import (
	"time"

	"github.com/simplyseat/reservation-service/pkg/types"
)

// TimeSlot is a derived candidate slot for one day. It is produced fresh per
// query and never persisted.
//
// StaffMemberID is set for staff-exclusive services. RemainingCapacity is set
// for shared-capacity services and is never negative.
type TimeSlot struct {
	StartTime         types.TimeString
	EndTime           types.TimeString
	Available         bool
	StaffMemberID     *int64
	RemainingCapacity *int
}

// DayAvailability is the availability result for a single date.
//
// IsClosed is true when no availability rule matched the day at all — a
// closed day, as opposed to an open day that is fully booked.
// WithinAdvanceHours is true when the day had open-hours slots but the
// lead-time filter removed every one of them; BookingAdvanceHours echoes the
// venue's threshold in that case.
type DayAvailability struct {
	Date                time.Time
	DayOfWeek           int
	TimeSlots           []TimeSlot
	IsClosed            bool
	WithinAdvanceHours  bool
	BookingAdvanceHours int
}

// OpenSlotCount returns the number of bookable slots in the day.
func (d *DayAvailability) OpenSlotCount() int {
	count := 0
	for _, slot := range d.TimeSlots {
		if slot.Available {
			count++
		}
	}
	return count
}
