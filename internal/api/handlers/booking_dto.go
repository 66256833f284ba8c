package handlers

import (
	"time"

	"github.com/simplyseat/reservation-service/internal/domain"
)

// BookingResponse представление брони в HTTP-ответах.
type BookingResponse struct {
	ID                 int64   `json:"id"`
	VenueID            int64   `json:"venue_id"`
	ServiceID          int64   `json:"service_id"`
	StaffMemberID      *int64  `json:"staff_member_id,omitempty"`
	UserID             int64   `json:"user_id"`
	BookingDate        string  `json:"booking_date"`
	StartTime          string  `json:"start_time"`
	EndTime            string  `json:"end_time"`
	PartySize          int     `json:"party_size"`
	Status             string  `json:"status"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`
	CancelledAt        *string `json:"cancelled_at,omitempty"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}

// ToBookingResponse конвертирует доменную бронь в HTTP-модель.
func ToBookingResponse(booking *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                 booking.ID,
		VenueID:            booking.VenueID,
		ServiceID:          booking.ServiceID,
		StaffMemberID:      booking.StaffMemberID,
		UserID:             booking.UserID,
		BookingDate:        booking.BookingDate.Format(domain.DateFormat),
		StartTime:          booking.StartTime.String(),
		EndTime:            booking.EndTime.String(),
		PartySize:          booking.PartySize,
		Status:             string(booking.Status),
		Notes:              booking.Notes,
		CancellationReason: booking.CancellationReason,
		CreatedAt:          booking.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          booking.UpdatedAt.Format(time.RFC3339),
	}
	if booking.CancelledAt != nil {
		cancelled := booking.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}
	return resp
}

// ToBookingResponses конвертирует список броней.
func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, ToBookingResponse(booking))
	}
	return result
}
