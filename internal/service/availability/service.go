package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/simplyseat/reservation-service/internal/domain"
	storageCatalog "github.com/simplyseat/reservation-service/internal/infra/storage/catalog"
	storageVenue "github.com/simplyseat/reservation-service/internal/infra/storage/venue"
	"github.com/simplyseat/reservation-service/pkg/types"
)

// Service сервис расчёта доступности слотов.
type Service struct {
	venueRepo   VenueRepository
	catalogRepo CatalogRepository
	ruleRepo    RuleRepository
	bookingRepo BookingRepository
	timeProv    TimeProvider
	log         Logger
	// maxRangeDays максимальная длина диапазона для GetRangeAvailability.
	maxRangeDays int
}

// NewService создаёт сервис доступности.
func NewService(
	venueRepo VenueRepository,
	catalogRepo CatalogRepository,
	ruleRepo RuleRepository,
	bookingRepo BookingRepository,
	timeProv TimeProvider,
	log Logger,
	maxRangeDays int,
) *Service {
	if maxRangeDays <= 0 {
		maxRangeDays = domain.DefaultAvailabilityRangeMaxDays
	}
	return &Service{
		venueRepo:    venueRepo,
		catalogRepo:  catalogRepo,
		ruleRepo:     ruleRepo,
		bookingRepo:  bookingRepo,
		timeProv:     timeProv,
		log:          log,
		maxRangeDays: maxRangeDays,
	}
}

// GetDayAvailability возвращает слоты услуги на один день.
func (s *Service) GetDayAvailability(ctx context.Context, query DayQuery) (*domain.DayAvailability, error) {
	// 1. Валидация входных данных
	if err := normalizeDayQuery(&query); err != nil {
		return nil, err
	}

	// 2. Получение заведения и услуги
	venue, service, err := s.loadVenueAndService(ctx, query.VenueID, query.ServiceID)
	if err != nil {
		return nil, err
	}

	dayOfWeek := int(query.Date.Weekday())

	// 3. Сбор правил доступности на день недели
	var rawSlots []domain.TimeSlot
	if service.RequiresStaff {
		staffIDs, err := s.resolveStaffIDs(ctx, query.ServiceID, query.StaffMemberID)
		if err != nil {
			return nil, err
		}
		for _, staffID := range staffIDs {
			rules, err := s.ruleRepo.GetStaffRulesForDay(ctx, staffID, dayOfWeek)
			if err != nil {
				s.log.Error("[GetDayAvailability] Ошибка получения правил сотрудника %d: %v", staffID, err)
				return nil, fmt.Errorf("%w: staff rules: %v", ErrInternal, err)
			}
			rawSlots = append(rawSlots, s.expandRules(rules, service.DurationMinutes, staffID)...)
		}
	} else {
		rules, err := s.ruleRepo.GetVenueRulesForDay(ctx, query.VenueID, dayOfWeek)
		if err != nil {
			s.log.Error("[GetDayAvailability] Ошибка получения правил заведения %d: %v", query.VenueID, err)
			return nil, fmt.Errorf("%w: venue rules: %v", ErrInternal, err)
		}
		rawSlots = s.expandRules(rules, service.DurationMinutes, 0)
	}

	// 4. Получение подтверждённых броней на дату
	bookings, err := s.loadBookings(ctx, venue.ID, service, query.StaffMemberID, query.Date, query.Date, query.ExcludeBookingID)
	if err != nil {
		return nil, err
	}

	// 5. Сборка дня: занятость, дедупликация, фильтры
	day := s.assembleDay(query.Date, venue, service, rawSlots, bookings, query.PartySize, query.WindowStart, query.WindowEnd)
	return day, nil
}

// GetRangeAvailability возвращает доступность по дням для диапазона дат.
// Правила и брони загружаются за два запроса на весь диапазон, дальнейший
// расчёт идёт в памяти. Сбой расчёта отдельного дня не прерывает диапазон:
// такой день отдаётся закрытым.
func (s *Service) GetRangeAvailability(ctx context.Context, query RangeQuery) ([]*domain.DayAvailability, error) {
	// 1. Валидация диапазона
	if query.PartySize <= 0 {
		query.PartySize = 1
	}
	start := truncateToDate(query.StartDate)
	end := truncateToDate(query.EndDate)
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}
	totalDays := int(end.Sub(start).Hours()/24) + 1
	if totalDays > s.maxRangeDays {
		return nil, fmt.Errorf("%w: %d days requested, maximum is %d", ErrRangeTooLarge, totalDays, s.maxRangeDays)
	}

	// 2. Получение заведения и услуги
	venue, service, err := s.loadVenueAndService(ctx, query.VenueID, query.ServiceID)
	if err != nil {
		return nil, err
	}

	// 3. Пакетная загрузка правил на весь диапазон
	staffRulesByDay := make(map[int64]map[int][]*domain.AvailabilityRule)
	venueRulesByDay := make(map[int][]*domain.AvailabilityRule)
	var staffIDs []int64
	if service.RequiresStaff {
		staffIDs, err = s.resolveStaffIDs(ctx, query.ServiceID, query.StaffMemberID)
		if err != nil {
			return nil, err
		}
		rules, err := s.ruleRepo.GetStaffRules(ctx, staffIDs)
		if err != nil {
			s.log.Error("[GetRangeAvailability] Ошибка пакетной загрузки правил сотрудников: %v", err)
			return nil, fmt.Errorf("%w: staff rules: %v", ErrInternal, err)
		}
		for _, rule := range rules {
			if rule.StaffMemberID == nil {
				continue
			}
			byDay, ok := staffRulesByDay[*rule.StaffMemberID]
			if !ok {
				byDay = make(map[int][]*domain.AvailabilityRule)
				staffRulesByDay[*rule.StaffMemberID] = byDay
			}
			byDay[rule.DayOfWeek] = append(byDay[rule.DayOfWeek], rule)
		}
	} else {
		rules, err := s.ruleRepo.GetVenueRules(ctx, query.VenueID)
		if err != nil {
			s.log.Error("[GetRangeAvailability] Ошибка пакетной загрузки правил заведения %d: %v", query.VenueID, err)
			return nil, fmt.Errorf("%w: venue rules: %v", ErrInternal, err)
		}
		for _, rule := range rules {
			venueRulesByDay[rule.DayOfWeek] = append(venueRulesByDay[rule.DayOfWeek], rule)
		}
	}

	// 4. Пакетная загрузка броней на весь диапазон
	bookings, err := s.loadBookings(ctx, venue.ID, service, query.StaffMemberID, start, end, nil)
	if err != nil {
		return nil, err
	}
	bookingsByDate := make(map[string][]*domain.Booking, totalDays)
	for _, booking := range bookings {
		key := booking.BookingDate.Format(domain.DateFormat)
		bookingsByDate[key] = append(bookingsByDate[key], booking)
	}

	// 5. Посуточная сборка в памяти
	days := make([]*domain.DayAvailability, 0, totalDays)
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		dayOfWeek := int(date.Weekday())

		var rawSlots []domain.TimeSlot
		if service.RequiresStaff {
			for _, staffID := range staffIDs {
				rawSlots = append(rawSlots, s.expandRules(staffRulesByDay[staffID][dayOfWeek], service.DurationMinutes, staffID)...)
			}
		} else {
			rawSlots = s.expandRules(venueRulesByDay[dayOfWeek], service.DurationMinutes, 0)
		}

		dayBookings := bookingsByDate[date.Format(domain.DateFormat)]
		day := s.assembleDay(date, venue, service, rawSlots, dayBookings, query.PartySize, "", "")
		days = append(days, day)
	}
	return days, nil
}

// assembleDay собирает ответ по одному дню из уже загруженных правил и броней.
func (s *Service) assembleDay(
	date time.Time,
	venue *domain.Venue,
	service *domain.Service,
	rawSlots []domain.TimeSlot,
	bookings []*domain.Booking,
	partySize int,
	windowStart, windowEnd types.TimeString,
) *domain.DayAvailability {
	day := &domain.DayAvailability{
		Date:                date,
		DayOfWeek:           int(date.Weekday()),
		BookingAdvanceHours: venue.BookingAdvanceHours,
	}
	if len(rawSlots) == 0 {
		// Нет правил на этот день недели — заведение закрыто.
		day.IsClosed = true
		day.TimeSlots = []domain.TimeSlot{}
		return day
	}

	slots := resolveOccupancy(rawSlots, service, bookings, partySize)
	slots = dedupeAndSortSlots(slots)

	slots, allCut := filterByLeadTime(slots, date, s.timeProv.Now(), venue.BookingAdvanceHours)
	day.WithinAdvanceHours = allCut

	slots = filterByWindow(slots, windowStart, windowEnd)
	day.TimeSlots = slots
	return day
}

// expandRules нарезает правила на слоты. Правило с нечитаемым временем
// пропускается с предупреждением и слотов не даёт.
func (s *Service) expandRules(rules []*domain.AvailabilityRule, durationMinutes int, staffID int64) []domain.TimeSlot {
	var slots []domain.TimeSlot
	for _, rule := range rules {
		var staffPtr *int64
		if rule.Scope == domain.RuleScopeStaff {
			id := staffID
			if rule.StaffMemberID != nil {
				id = *rule.StaffMemberID
			}
			staffPtr = &id
		}
		generated, err := generateSlots(rule, durationMinutes, staffPtr)
		if err != nil {
			s.log.Warn("[expandRules] Пропуск правила %d: %v", rule.ID, err)
			continue
		}
		slots = append(slots, generated...)
	}
	return slots
}

// resolveStaffIDs возвращает сотрудников услуги, опционально суженных до одного.
func (s *Service) resolveStaffIDs(ctx context.Context, serviceID int64, staffMemberID *int64) ([]int64, error) {
	staff, err := s.catalogRepo.GetStaffForService(ctx, serviceID)
	if err != nil {
		s.log.Error("[resolveStaffIDs] Ошибка получения сотрудников услуги %d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: staff list: %v", ErrInternal, err)
	}
	ids := make([]int64, 0, len(staff))
	for _, member := range staff {
		if staffMemberID != nil && member.ID != *staffMemberID {
			continue
		}
		ids = append(ids, member.ID)
	}
	return ids, nil
}

// loadVenueAndService получает активные заведение и услугу.
func (s *Service) loadVenueAndService(ctx context.Context, venueID, serviceID int64) (*domain.Venue, *domain.Service, error) {
	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, storageVenue.ErrVenueNotFound) {
			return nil, nil, ErrVenueNotFound
		}
		s.log.Error("[loadVenueAndService] Ошибка получения заведения %d: %v", venueID, err)
		return nil, nil, fmt.Errorf("%w: venue: %v", ErrInternal, err)
	}

	service, err := s.catalogRepo.GetService(ctx, serviceID, venueID)
	if err != nil {
		if errors.Is(err, storageCatalog.ErrServiceNotFound) {
			return nil, nil, ErrServiceNotFound
		}
		s.log.Error("[loadVenueAndService] Ошибка получения услуги %d: %v", serviceID, err)
		return nil, nil, fmt.Errorf("%w: service: %v", ErrInternal, err)
	}
	return venue, service, nil
}

// loadBookings загружает подтверждённые брони для расчёта занятости.
// Для услуг с исполнителем берутся все брони сотрудников заведения независимо
// от услуги, для общей вместимости — только брони этой услуги.
func (s *Service) loadBookings(
	ctx context.Context,
	venueID int64,
	service *domain.Service,
	staffMemberID *int64,
	startDate, endDate time.Time,
	excludeBookingID *int64,
) ([]*domain.Booking, error) {
	status := domain.BookingStatusConfirmed
	filter := domain.VenueBookingsFilter{
		VenueID:   venueID,
		StartDate: &startDate,
		EndDate:   &endDate,
		Status:    &status,
		ExcludeID: excludeBookingID,
	}
	if service.RequiresStaff {
		filter.StaffOnly = true
		filter.StaffMemberID = staffMemberID
	} else {
		filter.ServiceID = &service.ID
	}

	bookings, err := s.bookingRepo.GetByVenueWithFilter(ctx, filter)
	if err != nil {
		s.log.Error("[loadBookings] Ошибка получения броней заведения %d: %v", venueID, err)
		return nil, fmt.Errorf("%w: bookings: %v", ErrInternal, err)
	}
	return bookings, nil
}

// normalizeDayQuery проверяет и нормализует параметры дневного запроса.
func normalizeDayQuery(query *DayQuery) error {
	if query.PartySize <= 0 {
		query.PartySize = 1
	}
	query.Date = truncateToDate(query.Date)
	if query.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if query.WindowStart.IsZero() != query.WindowEnd.IsZero() {
		return fmt.Errorf("%w: time window requires both boundaries", ErrInvalidInput)
	}
	if !query.WindowStart.IsZero() {
		if err := query.WindowStart.Validate(); err != nil {
			return fmt.Errorf("%w: window start: %v", ErrInvalidInput, err)
		}
		if err := query.WindowEnd.Validate(); err != nil {
			return fmt.Errorf("%w: window end: %v", ErrInvalidInput, err)
		}
	}
	return nil
}

func truncateToDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
