package availability

import (
	"github.com/simplyseat/reservation-service/internal/domain"
)

// resolveOccupancy размечает занятость слотов по подтверждённым броням.
//
// Для услуг с персональным исполнителем бронь сотрудника блокирует его слот
// целиком, независимо от услуги в брони. Для услуг с общей вместимостью по
// каждому слоту суммируются размеры групп пересекающихся броней, и слот
// доступен, пока остатка хватает на запрошенную группу.
//
// Брони с нечитаемым временем считаются занимающими слот: при сомнении
// отвечаем «занято», а не «свободно».
func resolveOccupancy(slots []domain.TimeSlot, service *domain.Service, bookings []*domain.Booking, partySize int) []domain.TimeSlot {
	result := make([]domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		slotIv, err := newInterval(slot.StartTime, slot.EndTime)
		if err != nil {
			slot.Available = false
			result = append(result, slot)
			continue
		}

		if service.RequiresStaff {
			slot.Available = !staffConflicts(slotIv, slot.StaffMemberID, bookings)
		} else {
			occupied := occupiedCapacity(slotIv, bookings)
			remaining := service.Capacity - occupied
			if remaining < 0 {
				remaining = 0
			}
			slot.Available = remaining >= partySize
			slot.RemainingCapacity = &remaining
		}
		result = append(result, slot)
	}
	return result
}

// staffConflicts проверяет, пересекается ли слот сотрудника хотя бы с одной его бронью.
func staffConflicts(slot interval, staffMemberID *int64, bookings []*domain.Booking) bool {
	if staffMemberID == nil {
		return false
	}
	for _, booking := range bookings {
		if !booking.OccupiesSlot() {
			continue
		}
		if booking.StaffMemberID == nil || *booking.StaffMemberID != *staffMemberID {
			continue
		}
		if bookingOverlaps(slot, booking) {
			return true
		}
	}
	return false
}

// occupiedCapacity суммирует размеры групп броней, пересекающихся со слотом.
func occupiedCapacity(slot interval, bookings []*domain.Booking) int {
	total := 0
	for _, booking := range bookings {
		if !booking.OccupiesSlot() {
			continue
		}
		if bookingOverlaps(slot, booking) {
			total += booking.PartySize
		}
	}
	return total
}

// bookingOverlaps проверяет пересечение брони со слотом.
// Нечитаемое время брони трактуется как пересечение.
func bookingOverlaps(slot interval, booking *domain.Booking) bool {
	iv, err := newInterval(booking.StartTime, booking.EndTime)
	if err != nil {
		return true
	}
	return slot.overlaps(iv)
}
