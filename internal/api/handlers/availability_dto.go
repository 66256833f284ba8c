package handlers

import (
	"github.com/simplyseat/reservation-service/internal/domain"
)

// TimeSlotResponse представление слота в HTTP-ответах.
type TimeSlotResponse struct {
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	Available         bool   `json:"available"`
	StaffMemberID     *int64 `json:"staff_member_id,omitempty"`
	RemainingCapacity *int   `json:"remaining_capacity,omitempty"`
}

// DayAvailabilityResponse доступность услуги на один день.
type DayAvailabilityResponse struct {
	Date                string             `json:"date"`
	DayOfWeek           int                `json:"day_of_week"`
	TimeSlots           []TimeSlotResponse `json:"time_slots"`
	IsClosed            bool               `json:"is_closed"`
	WithinAdvanceHours  bool               `json:"within_advance_hours"`
	BookingAdvanceHours int                `json:"booking_advance_hours"`
}

// ToDayAvailabilityResponse конвертирует доменную доступность дня в HTTP-модель.
func ToDayAvailabilityResponse(day *domain.DayAvailability) DayAvailabilityResponse {
	slots := make([]TimeSlotResponse, 0, len(day.TimeSlots))
	for _, slot := range day.TimeSlots {
		slots = append(slots, TimeSlotResponse{
			StartTime:         slot.StartTime.String(),
			EndTime:           slot.EndTime.String(),
			Available:         slot.Available,
			StaffMemberID:     slot.StaffMemberID,
			RemainingCapacity: slot.RemainingCapacity,
		})
	}
	return DayAvailabilityResponse{
		Date:                day.Date.Format(domain.DateFormat),
		DayOfWeek:           day.DayOfWeek,
		TimeSlots:           slots,
		IsClosed:            day.IsClosed,
		WithinAdvanceHours:  day.WithinAdvanceHours,
		BookingAdvanceHours: day.BookingAdvanceHours,
	}
}

// ToDayAvailabilityResponses конвертирует список дней.
func ToDayAvailabilityResponses(days []*domain.DayAvailability) []DayAvailabilityResponse {
	result := make([]DayAvailabilityResponse, 0, len(days))
	for _, day := range days {
		result = append(result, ToDayAvailabilityResponse(day))
	}
	return result
}
