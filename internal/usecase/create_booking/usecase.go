package create_booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/simplyseat/reservation-service/internal/domain"
	"github.com/simplyseat/reservation-service/internal/service/availability"
	"github.com/simplyseat/reservation-service/pkg/types"
)

// Usecase создание брони: валидация и запись выполняются в одной
// сериализуемой транзакции, чтобы две конкурирующие брони не смогли
// одновременно пройти проверку занятости одного слота.
type Usecase struct {
	txManager TransactionManager
	validator BookingValidator
	repo      BookingRepository
	log       Logger
}

// NewUsecase создаёт usecase.
func NewUsecase(txManager TransactionManager, validator BookingValidator, repo BookingRepository, log Logger) *Usecase {
	return &Usecase{
		txManager: txManager,
		validator: validator,
		repo:      repo,
		log:       log,
	}
}

// Handle валидирует запрос и создаёт подтверждённую бронь.
// При отказе валидации возвращает *ValidationError со всеми сообщениями.
func (u *Usecase) Handle(ctx context.Context, req Request) (*domain.Booking, error) {
	// 1. Базовая проверка идентификаторов
	if req.UserID <= 0 || req.VenueID <= 0 || req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: user, venue and service are required", ErrInvalidInput)
	}
	notes := strings.TrimSpace(req.Notes)
	if len(notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	// 2. Валидация и запись в одной сериализуемой транзакции
	var created *domain.Booking
	err := u.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		result, err := u.validator.ValidateBookingRequest(txCtx, availability.BookingRequest{
			VenueID:            req.VenueID,
			ServiceID:          req.ServiceID,
			StaffMemberID:      req.StaffMemberID,
			Date:               req.Date,
			StartTime:          req.StartTime,
			EndTime:            req.EndTime,
			PartySize:          req.PartySize,
			BypassAdvanceCheck: req.BypassAdvanceCheck,
		})
		if err != nil {
			return fmt.Errorf("%w: validation: %v", ErrInternal, err)
		}
		if !result.Valid {
			return &ValidationError{Messages: result.Errors}
		}

		booking := &domain.Booking{
			VenueID:       req.VenueID,
			ServiceID:     req.ServiceID,
			StaffMemberID: req.StaffMemberID,
			UserID:        req.UserID,
			BookingDate:   req.Date,
			StartTime:     types.TimeString(req.StartTime),
			EndTime:       types.TimeString(req.EndTime),
			PartySize:     req.PartySize,
			Status:        domain.BookingStatusConfirmed,
		}
		if notes != "" {
			booking.Notes = &notes
		}
		created, err = u.repo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: create: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Info("[Handle] Создана бронь %d: заведение %d, услуга %d, дата %s %s-%s",
		created.ID, created.VenueID, created.ServiceID,
		created.BookingDate.Format(domain.DateFormat), created.StartTime, created.EndTime)
	return created, nil
}
