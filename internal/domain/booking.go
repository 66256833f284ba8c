package domain

import (
	"time"

	"github.com/simplyseat/reservation-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reservation of a time slot in the system.
// StaffMemberID is set only for staff-exclusive services.
type Booking struct {
	ID            int64
	VenueID       int64
	ServiceID     int64
	StaffMemberID *int64
	UserID        int64
	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	PartySize     int
	Status        BookingStatus

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot reports whether the booking counts against availability.
// Only confirmed bookings hold a slot; a pending booking reserves nothing.
func (b *Booking) OccupiesSlot() bool {
	return b.Status == BookingStatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// VenueBookingsFilter фильтр для получения бронирований заведения
type VenueBookingsFilter struct {
	VenueID       int64          // Обязательный параметр
	ServiceID     *int64         // Фильтр по услуге (опционально)
	StaffMemberID *int64         // Фильтр по сотруднику (опционально)
	StaffOnly     bool           // Только бронирования с назначенным сотрудником
	StartDate     *time.Time     // Начало периода (опционально)
	EndDate       *time.Time     // Конец периода (опционально)
	Status        *BookingStatus // Фильтр по статусу (опционально)
	ExcludeID     *int64         // Исключить бронирование (для reschedule)
}
