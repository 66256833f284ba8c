package check_slot

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
	msgInvalidDate      = "invalid or missing date, expected YYYY-MM-DD"
	msgInvalidParams    = "invalid query parameters"
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

// Handle GET /api/v1/venues/{venueId}/availability/check?service_id=&date=&start_time=&end_time=&party_size=&staff_member_id=&exclude_booking_id=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/availability/check - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	serviceID, err := handlers.ParseOptionalInt64Param(r, "service_id")
	if err != nil || serviceID == nil {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := handlers.ParseDateParam(r, "date")
	if err != nil {
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

	query := availability.SlotQuery{
		VenueID:          venueID,
		ServiceID:        *serviceID,
		StaffMemberID:    staffMemberID,
		Date:             date,
		StartTime:        r.URL.Query().Get("start_time"),
		EndTime:          r.URL.Query().Get("end_time"),
		PartySize:        partySize,
		ExcludeBookingID: excludeBookingID,
	}

	check, err := h.service.CheckSlot(r.Context(), query)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /venues/{id}/availability/check - Failed: venue_id=%d, error=%v", venueID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CheckSlotResponse{
		Available: check.Available,
		Reason:    check.Reason,
	})
}
