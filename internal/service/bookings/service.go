package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/simplyseat/reservation-service/internal/domain"
	storageBooking "github.com/simplyseat/reservation-service/internal/infra/storage/booking"
)

// Service сервис работы с существующими бронями: чтение, отмена, смена статуса.
// Создание брони идёт через отдельный usecase с сериализуемой транзакцией.
type Service struct {
	repo BookingRepository
	log  Logger
}

// NewService создаёт сервис броней.
func NewService(repo BookingRepository, log Logger) *Service {
	return &Service{repo: repo, log: log}
}

// GetByID возвращает бронь, если запрашивающий — её владелец.
func (s *Service) GetByID(ctx context.Context, bookingID, requesterID int64) (*domain.Booking, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != requesterID {
		s.log.Warn("[GetByID] Отказ в доступе: пользователь %d запросил бронь %d пользователя %d",
			requesterID, bookingID, booking.UserID)
		return nil, ErrAccessDenied
	}
	return booking, nil
}

// GetUserBookings возвращает брони пользователя, опционально по статусу.
// Пользователь может смотреть только свои брони.
func (s *Service) GetUserBookings(ctx context.Context, userID, requesterID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	if userID != requesterID {
		return nil, ErrAccessDenied
	}
	if status != nil && !isKnownStatus(*status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *status)
	}

	bookings, err := s.repo.GetByUserID(ctx, userID, status)
	if err != nil {
		s.log.Error("[GetUserBookings] Ошибка получения броней пользователя %d: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return bookings, nil
}

// GetVenueBookings возвращает брони заведения с фильтрами.
func (s *Service) GetVenueBookings(ctx context.Context, filter domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	if filter.Status != nil && !isKnownStatus(*filter.Status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *filter.Status)
	}

	bookings, err := s.repo.GetByVenueWithFilter(ctx, filter)
	if err != nil {
		s.log.Error("[GetVenueBookings] Ошибка получения броней заведения %d: %v", filter.VenueID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return bookings, nil
}

// Cancel отменяет бронь владельца. Завершённые и уже отменённые брони
// отменить нельзя.
func (s *Service) Cancel(ctx context.Context, bookingID, requesterID int64, reason string) (*domain.Booking, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != requesterID {
		s.log.Warn("[Cancel] Отказ в доступе: пользователь %d пытается отменить бронь %d пользователя %d",
			requesterID, bookingID, booking.UserID)
		return nil, ErrAccessDenied
	}
	if !booking.CanBeCancelled() {
		return nil, fmt.Errorf("%w: status %q", ErrCannotCancel, booking.Status)
	}

	reason = strings.TrimSpace(reason)
	if len(reason) > domain.MaxCancellationReasonLength {
		reason = reason[:domain.MaxCancellationReasonLength]
	}

	if err := s.repo.Cancel(ctx, bookingID, reason); err != nil {
		s.log.Error("[Cancel] Ошибка отмены брони %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.log.Info("[Cancel] Бронь %d отменена пользователем %d", bookingID, requesterID)
	return s.loadBooking(ctx, bookingID)
}

// UpdateStatus переводит бронь в новый статус.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) (*domain.Booking, error) {
	if !isKnownStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if _, err := s.loadBooking(ctx, bookingID); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, bookingID, status); err != nil {
		s.log.Error("[UpdateStatus] Ошибка смены статуса брони %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return s.loadBooking(ctx, bookingID)
}

func (s *Service) loadBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, storageBooking.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.log.Error("[loadBooking] Ошибка получения брони %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return booking, nil
}

func isKnownStatus(status domain.BookingStatus) bool {
	switch status {
	case domain.BookingStatusPending, domain.BookingStatusConfirmed,
		domain.BookingStatusCompleted, domain.BookingStatusCancelled:
		return true
	}
	return false
}
