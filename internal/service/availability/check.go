package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/simplyseat/reservation-service/internal/domain"
	storageCatalog "github.com/simplyseat/reservation-service/internal/infra/storage/catalog"
	"github.com/simplyseat/reservation-service/pkg/types"
)

// Тексты причин недоступности слота. Отдаются клиенту как есть.
const (
	reasonServiceNotFound      = "Service not found or inactive"
	reasonStaffRequired        = "Staff member is required for this service"
	reasonPartyExceedsCapacity = "Party size exceeds service capacity (max: %d)"
	reasonInvalidTimeFormat    = "Invalid time format. Use HH:MM"
	reasonStaffClosedDay       = "Staff member not available on this day"
	reasonVenueClosedDay       = "Venue closed on this day"
	reasonOutsideStaffHours    = "Requested time is outside staff working hours"
	reasonOutsideVenueHours    = "Requested time is outside venue opening hours"
	reasonAlreadyBooked        = "Time slot already booked"
	reasonInsufficientCapacity = "Insufficient capacity for requested party size"
)

// CheckSlot точечно проверяет доступность одного слота.
// Проверки идут последовательно, возвращается первая найденная причина отказа.
// Бизнес-отказ — это не ошибка: ошибка возвращается только при сбое инфраструктуры.
func (s *Service) CheckSlot(ctx context.Context, query SlotQuery) (*SlotCheck, error) {
	if query.PartySize <= 0 {
		query.PartySize = 1
	}
	query.Date = truncateToDate(query.Date)

	// 1. Услуга существует и активна
	service, err := s.catalogRepo.GetService(ctx, query.ServiceID, query.VenueID)
	if err != nil {
		if errors.Is(err, storageCatalog.ErrServiceNotFound) {
			return &SlotCheck{Available: false, Reason: reasonServiceNotFound}, nil
		}
		s.log.Error("[CheckSlot] Ошибка получения услуги %d: %v", query.ServiceID, err)
		return nil, fmt.Errorf("%w: service: %v", ErrInternal, err)
	}

	// 2. Для услуги с исполнителем сотрудник обязателен
	if service.RequiresStaff && query.StaffMemberID == nil {
		return &SlotCheck{Available: false, Reason: reasonStaffRequired}, nil
	}

	// 3. Размер группы не превышает вместимость услуги
	if query.PartySize > service.Capacity {
		return &SlotCheck{
			Available: false,
			Reason:    fmt.Sprintf(reasonPartyExceedsCapacity, service.Capacity),
		}, nil
	}

	// 4. Времена читаемы
	start := types.TimeString(query.StartTime)
	end := types.TimeString(query.EndTime)
	requested, err := parseRequestedInterval(start, end)
	if err != nil {
		return &SlotCheck{Available: false, Reason: reasonInvalidTimeFormat}, nil
	}

	// 5. Слот попадает в рабочие часы
	dayOfWeek := int(query.Date.Weekday())
	var rules []*domain.AvailabilityRule
	if service.RequiresStaff {
		rules, err = s.ruleRepo.GetStaffRulesForDay(ctx, *query.StaffMemberID, dayOfWeek)
	} else {
		rules, err = s.ruleRepo.GetVenueRulesForDay(ctx, query.VenueID, dayOfWeek)
	}
	if err != nil {
		s.log.Error("[CheckSlot] Ошибка получения правил: %v", err)
		return nil, fmt.Errorf("%w: rules: %v", ErrInternal, err)
	}
	if len(rules) == 0 {
		if service.RequiresStaff {
			return &SlotCheck{Available: false, Reason: reasonStaffClosedDay}, nil
		}
		return &SlotCheck{Available: false, Reason: reasonVenueClosedDay}, nil
	}
	if !withinWorkingHours(requested, rules) {
		if service.RequiresStaff {
			return &SlotCheck{Available: false, Reason: reasonOutsideStaffHours}, nil
		}
		return &SlotCheck{Available: false, Reason: reasonOutsideVenueHours}, nil
	}

	// 6. Конфликты с подтверждёнными бронями
	bookings, err := s.loadBookings(ctx, query.VenueID, service, query.StaffMemberID, query.Date, query.Date, query.ExcludeBookingID)
	if err != nil {
		return nil, err
	}
	if service.RequiresStaff {
		if staffConflicts(requested, query.StaffMemberID, bookings) {
			return &SlotCheck{Available: false, Reason: reasonAlreadyBooked}, nil
		}
	} else {
		occupied := occupiedCapacity(requested, bookings)
		if occupied+query.PartySize > service.Capacity {
			return &SlotCheck{Available: false, Reason: reasonInsufficientCapacity}, nil
		}
	}

	return &SlotCheck{Available: true}, nil
}

// parseRequestedInterval строго валидирует формат HH:MM перед расчётом минут.
func parseRequestedInterval(start, end types.TimeString) (interval, error) {
	if err := start.Validate(); err != nil {
		return interval{}, err
	}
	if err := end.Validate(); err != nil {
		return interval{}, err
	}
	return newInterval(start, end)
}

// withinWorkingHours проверяет, что запрошенный интервал целиком лежит
// внутри хотя бы одного правила.
func withinWorkingHours(requested interval, rules []*domain.AvailabilityRule) bool {
	for _, rule := range rules {
		window, err := newInterval(rule.StartTime, rule.EndTime)
		if err != nil {
			continue
		}
		if window.contains(requested) {
			return true
		}
	}
	return false
}
