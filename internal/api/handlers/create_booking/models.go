package create_booking

import (
	"time"

	"github.com/simplyseat/reservation-service/internal/domain"
	usecase "github.com/simplyseat/reservation-service/internal/usecase/create_booking"
)

// CreateBookingRequest тело запроса на создание брони.
type CreateBookingRequest struct {
	VenueID       int64  `json:"venue_id"`
	ServiceID     int64  `json:"service_id"`
	StaffMemberID *int64 `json:"staff_member_id,omitempty"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	PartySize     int    `json:"party_size"`
	Notes         string `json:"notes,omitempty"`
}

// ToUsecaseRequest конвертирует HTTP-модель в модель usecase.
// Дата парсится отдельно: нечитаемая дата станет нулевой и будет
// отклонена валидацией как дата в прошлом.
func (r CreateBookingRequest) ToUsecaseRequest(userID int64) usecase.Request {
	date, _ := time.Parse(domain.DateFormat, r.Date)
	return usecase.Request{
		UserID:        userID,
		VenueID:       r.VenueID,
		ServiceID:     r.ServiceID,
		StaffMemberID: r.StaffMemberID,
		Date:          date,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		PartySize:     r.PartySize,
		Notes:         r.Notes,
	}
}
