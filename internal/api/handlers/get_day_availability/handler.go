package get_day_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/simplyseat/reservation-service/internal/api/handlers"
	"github.com/simplyseat/reservation-service/internal/service/availability"
	"github.com/simplyseat/reservation-service/pkg/types"
)

const (
	msgInvalidVenueID   = "invalid venue id"
	msgInvalidServiceID = "invalid or missing service_id"
	msgInvalidDate      = "invalid or missing date, expected YYYY-MM-DD"
	msgInvalidParams    = "invalid query parameters"
	msgVenueNotFound    = "venue not found"
	msgServiceNotFound  = "service not found"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/availability?service_id=&date=&party_size=&staff_member_id=&from=&to=&exclude_booking_id=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/availability - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	serviceID, err := handlers.ParseOptionalInt64Param(r, "service_id")
	if err != nil || serviceID == nil {
		h.logger.Warn("GET /venues/{id}/availability - Invalid service_id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := handlers.ParseDateParam(r, "date")
	if err != nil {
		h.logger.Warn("GET /venues/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	partySize, err := handlers.ParseOptionalIntParam(r, "party_size", 1)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	staffMemberID, err := handlers.ParseOptionalInt64Param(r, "staff_member_id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	excludeBookingID, err := handlers.ParseOptionalInt64Param(r, "exclude_booking_id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	query := availability.DayQuery{
		VenueID:          venueID,
		ServiceID:        *serviceID,
		Date:             date,
		PartySize:        partySize,
		StaffMemberID:    staffMemberID,
		WindowStart:      types.TimeString(r.URL.Query().Get("from")),
		WindowEnd:        types.TimeString(r.URL.Query().Get("to")),
		ExcludeBookingID: excludeBookingID,
	}

	day, err := h.service.GetDayAvailability(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrVenueNotFound):
			handlers.RespondNotFound(w, msgVenueNotFound)
		case errors.Is(err, availability.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, availability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)
		default:
			h.logger.Error("GET /venues/{id}/availability - Failed: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.ToDayAvailabilityResponse(day))
}
