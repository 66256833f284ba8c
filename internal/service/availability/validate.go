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

// Тексты ошибок валидации запроса на бронирование. Отдаются клиенту как есть.
const (
	msgPartySizeTooSmall = "Party size must be at least 1"
	msgPartySizeTooLarge = "Party size must be between 1 and 8. For larger groups please call the venue directly."
	msgInvalidTimeFormat = "Invalid time format. Use HH:MM"
	msgEndBeforeStart    = "End time must be after start time"
	msgDateInPast        = "Cannot book a date in the past"
	msgAdvanceHours      = "Bookings must be made at least %d hours in advance. Only %.1f hours remaining."
	msgVenueNotFound     = "Venue not found or inactive"
	msgServiceNotFound   = "Service not found or inactive"
	msgStaffRequired     = "Staff member is required for this service"
	msgStaffIncapable    = "Selected staff member cannot perform this service"
)

// ValidateBookingRequest выполняет многоступенчатую валидацию запроса на бронирование.
// Ошибки накапливаются, а не прерывают проверку на первой: клиент получает
// полный список проблем. Финальная проверка доступности слота выполняется
// только если остальные ступени прошли чисто.
func (s *Service) ValidateBookingRequest(ctx context.Context, req BookingRequest) (*ValidationResult, error) {
	var validationErrors []string
	now := s.timeProv.Now()

	// 1. Размер группы
	if req.PartySize < domain.MinPartySize {
		validationErrors = append(validationErrors, msgPartySizeTooSmall)
	} else if req.PartySize > domain.MaxPartySize {
		validationErrors = append(validationErrors, msgPartySizeTooLarge)
	}

	// 2. Формат и порядок времён
	start := types.TimeString(req.StartTime)
	end := types.TimeString(req.EndTime)
	timesValid := start.Validate() == nil && end.Validate() == nil
	if !timesValid {
		validationErrors = append(validationErrors, msgInvalidTimeFormat)
	} else if !end.IsAfter(start) {
		validationErrors = append(validationErrors, msgEndBeforeStart)
	}

	// 3. Дата не в прошлом (сравнение по календарному дню)
	date := truncateToDate(req.Date)
	today := truncateToDate(now)
	if date.IsZero() || date.Before(today) {
		validationErrors = append(validationErrors, msgDateInPast)
	}

	// 4. Заведение и минимальный срок до брони
	venue, err := s.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, storageVenue.ErrVenueNotFound) {
			validationErrors = append(validationErrors, msgVenueNotFound)
			return &ValidationResult{Valid: false, Errors: validationErrors}, nil
		}
		s.log.Error("[ValidateBookingRequest] Ошибка получения заведения %d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: venue: %v", ErrInternal, err)
	}
	if !req.BypassAdvanceCheck && timesValid && !date.IsZero() {
		if msg := s.checkAdvanceHours(date, start, now, venue.BookingAdvanceHours); msg != "" {
			validationErrors = append(validationErrors, msg)
		}
	}

	// 5. Услуга существует и активна
	service, err := s.catalogRepo.GetService(ctx, req.ServiceID, req.VenueID)
	if err != nil {
		if errors.Is(err, storageCatalog.ErrServiceNotFound) {
			validationErrors = append(validationErrors, msgServiceNotFound)
			return &ValidationResult{Valid: false, Errors: validationErrors}, nil
		}
		s.log.Error("[ValidateBookingRequest] Ошибка получения услуги %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: service: %v", ErrInternal, err)
	}

	// 6. Сотрудник обязателен и умеет выполнять услугу
	if service.RequiresStaff {
		if req.StaffMemberID == nil {
			validationErrors = append(validationErrors, msgStaffRequired)
		} else {
			capable, err := s.catalogRepo.CanStaffPerformService(ctx, *req.StaffMemberID, req.ServiceID)
			if err != nil {
				s.log.Error("[ValidateBookingRequest] Ошибка проверки сотрудника %d: %v", *req.StaffMemberID, err)
				return nil, fmt.Errorf("%w: staff capability: %v", ErrInternal, err)
			}
			if !capable {
				validationErrors = append(validationErrors, msgStaffIncapable)
			}
		}
	}

	// 7. Финальная проверка доступности слота — только на чистом запросе
	if len(validationErrors) == 0 {
		check, err := s.CheckSlot(ctx, SlotQuery{
			VenueID:          req.VenueID,
			ServiceID:        req.ServiceID,
			StaffMemberID:    req.StaffMemberID,
			Date:             date,
			StartTime:        req.StartTime,
			EndTime:          req.EndTime,
			PartySize:        req.PartySize,
			ExcludeBookingID: req.ExcludeBookingID,
		})
		if err != nil {
			return nil, err
		}
		if !check.Available {
			validationErrors = append(validationErrors, check.Reason)
		}
	}

	return &ValidationResult{
		Valid:  len(validationErrors) == 0,
		Errors: validationErrors,
	}, nil
}

// checkAdvanceHours возвращает текст ошибки, если до начала брони осталось
// меньше минимального срока заведения. Бронь ровно на границе срока проходит.
func (s *Service) checkAdvanceHours(date time.Time, start types.TimeString, now time.Time, advanceHours int) string {
	if advanceHours <= 0 {
		return ""
	}
	minutes, err := start.Minutes()
	if err != nil {
		return ""
	}
	bookingStart := date.Add(time.Duration(minutes) * time.Minute)
	remaining := bookingStart.Sub(now).Hours()
	if remaining < float64(advanceHours) {
		return fmt.Sprintf(msgAdvanceHours, advanceHours, remaining)
	}
	return ""
}
