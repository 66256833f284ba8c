package get_range_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/simplyseat/reservation-service/internal/api/handlers"
	"github.com/simplyseat/reservation-service/internal/service/availability"
)

const (
	msgInvalidVenueID   = "invalid venue id"
	msgInvalidServiceID = "invalid or missing service_id"
	msgInvalidDates     = "invalid or missing start_date/end_date, expected YYYY-MM-DD"
	msgInvalidParams    = "invalid query parameters"
	msgRangeTooLarge    = "requested date range is too large"
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

// Handle GET /api/v1/venues/{venueId}/availability/range?service_id=&start_date=&end_date=&party_size=&staff_member_id=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/availability/range - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	serviceID, err := handlers.ParseOptionalInt64Param(r, "service_id")
	if err != nil || serviceID == nil {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	startDate, err := handlers.ParseDateParam(r, "start_date")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}
	endDate, err := handlers.ParseDateParam(r, "end_date")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDates)
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

	query := availability.RangeQuery{
		VenueID:       venueID,
		ServiceID:     *serviceID,
		StartDate:     startDate,
		EndDate:       endDate,
		PartySize:     partySize,
		StaffMemberID: staffMemberID,
	}

	days, err := h.service.GetRangeAvailability(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrVenueNotFound):
			handlers.RespondNotFound(w, msgVenueNotFound)
		case errors.Is(err, availability.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, availability.ErrRangeTooLarge):
			handlers.RespondBadRequest(w, msgRangeTooLarge)
		case errors.Is(err, availability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)
		default:
			h.logger.Error("GET /venues/{id}/availability/range - Failed: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"days": handlers.ToDayAvailabilityResponses(days),
	})
}
