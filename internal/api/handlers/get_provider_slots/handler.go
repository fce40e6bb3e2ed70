package get_provider_slots

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/glamtime/GT-BookingService/internal/api/handlers"
)

const msgMissingProviderID = "отсутствует ID мастера"

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["providerId"]
	if providerID == "" {
		h.logger.Warn("GET /providers/{id}/slots - Missing provider ID")
		handlers.RespondBadRequest(w, msgMissingProviderID)
		return
	}

	slots, err := h.service.ListByProvider(r.Context(), providerID)
	if err != nil {
		h.logger.Error("GET /providers/{id}/slots - Failed to list slots: provider_id=%s, error=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /providers/{id}/slots - Slots retrieved successfully: provider_id=%s, count=%d",
		providerID, len(slots.Slots))
	handlers.RespondJSON(w, http.StatusOK, slots)
}
