package create_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/glamtime/GT-BookingService/internal/api/handlers"
	"github.com/glamtime/GT-BookingService/internal/api/middleware"
	"github.com/glamtime/GT-BookingService/internal/service/slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidTimeRange   = "время начала должно быть раньше времени окончания"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgProviderNotFound   = "мастер не найден"
	msgSlotOverlap        = "слот пересекается с существующим слотом"
)

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

// Handle POST /api/v1/providers/{providerId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["providerId"]

	// Создавать слоты может только сам мастер
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /providers/{id}/slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if userID != providerID {
		h.logger.Warn("POST /providers/{id}/slots - Access denied: provider_id=%s, user_id=%s", providerID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /providers/{id}/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(providerID)
	if err != nil {
		h.logger.Warn("POST /providers/{id}/slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	slot, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput), errors.Is(err, slots.ErrInvalidTimeRange):
			h.logger.Warn("POST /providers/{id}/slots - Invalid time range: provider_id=%s, error=%v", providerID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, slots.ErrProviderNotFound):
			h.logger.Warn("POST /providers/{id}/slots - Provider not found: provider_id=%s", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, slots.ErrSlotOverlap):
			h.logger.Warn("POST /providers/{id}/slots - Slot overlap: provider_id=%s", providerID)
			handlers.RespondConflict(w, msgSlotOverlap)

		default:
			h.logger.Error("POST /providers/{id}/slots - Failed to create slot: provider_id=%s, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /providers/{id}/slots - Slot created successfully: slot_id=%d, provider_id=%s", slot.ID, providerID)
	handlers.RespondJSON(w, http.StatusCreated, slot)
}
