package create_booking

import (
	"errors"
	"net/http"

	"github.com/simplyseat/reservation-service/internal/api/handlers"
	"github.com/simplyseat/reservation-service/internal/api/middleware"
	usecase "github.com/simplyseat/reservation-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnauthorized       = "user identification required"
	msgValidationFailed   = "booking request validation failed"
)

type Handler struct {
	usecase CreateBookingUsecase
	logger  Logger
}

func NewHandler(uc CreateBookingUsecase, logger Logger) *Handler {
	return &Handler{
		usecase: uc,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.usecase.Handle(r.Context(), req.ToUsecaseRequest(userID))
	if err != nil {
		var validationErr *usecase.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Info("POST /bookings - Validation failed: user_id=%d, errors=%v",
				userID, validationErr.Messages)
			handlers.RespondValidationError(w, msgValidationFailed, validationErr.Messages)

		case errors.Is(err, usecase.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d", booking.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.ToBookingResponse(booking))
}
