package get_venue_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/simplyseat/reservation-service/internal/api/handlers"
	"github.com/simplyseat/reservation-service/internal/domain"
	"github.com/simplyseat/reservation-service/internal/service/bookings"
)

const (
	msgInvalidVenueID = "invalid venue id"
	msgInvalidStatus  = "invalid status filter"
	msgInvalidParams  = "invalid query parameters"
	msgInvalidDates   = "invalid date filter, expected YYYY-MM-DD"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/bookings?status=&service_id=&staff_member_id=&start_date=&end_date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/bookings - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	filter := domain.VenueBookingsFilter{VenueID: venueID}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.BookingStatus(raw)
		filter.Status = &status
	}
	filter.ServiceID, err = handlers.ParseOptionalInt64Param(r, "service_id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	filter.StaffMemberID, err = handlers.ParseOptionalInt64Param(r, "staff_member_id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	if raw := r.URL.Query().Get("start_date"); raw != "" {
		startDate, err := handlers.ParseDateParam(r, "start_date")
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDates)
			return
		}
		filter.StartDate = &startDate
	}
	if raw := r.URL.Query().Get("end_date"); raw != "" {
		endDate, err := handlers.ParseDateParam(r, "end_date")
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDates)
			return
		}
		filter.EndDate = &endDate
	}

	found, err := h.service.GetVenueBookings(r.Context(), filter)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidStatus) {
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /venues/{id}/bookings - Failed: venue_id=%d, error=%v", venueID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"bookings": handlers.ToBookingResponses(found),
	})
}
