package list_venues

import (
	"net/http"

	"github.com/simplyseat/reservation-service/internal/api/handlers"
	"github.com/simplyseat/reservation-service/internal/domain"
)

const msgInvalidVenueType = "invalid venue type"

type Handler struct {
	service VenueService
	logger  Logger
}

func NewHandler(service VenueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues?type=&location=&q=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := domain.VenueFilter{
		Location: query.Get("location"),
		Query:    query.Get("q"),
	}
	if raw := query.Get("type"); raw != "" {
		venueType := domain.VenueType(raw)
		switch venueType {
		case domain.VenueTypeRestaurant, domain.VenueTypeSalon, domain.VenueTypeSpa, domain.VenueTypeBar:
			filter.Type = &venueType
		default:
			h.logger.Warn("GET /venues - Invalid venue type: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidVenueType)
			return
		}
	}

	found, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /venues - Failed to list venues: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(found))
}
