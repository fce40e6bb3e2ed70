package get_client_reservations

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/glamtime/GT-BookingService/internal/api/handlers"
	"github.com/glamtime/GT-BookingService/internal/api/middleware"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]

	// История доступна только самому клиенту
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /clients/{id}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if userID != clientID {
		h.logger.Warn("GET /clients/{id}/reservations - Access denied: client_id=%s, user_id=%s", clientID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	reservations, err := h.service.ListByClient(r.Context(), clientID)
	if err != nil {
		h.logger.Error("GET /clients/{id}/reservations - Failed to list reservations: client_id=%s, error=%v", clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients/{id}/reservations - Reservations retrieved: client_id=%s, count=%d",
		clientID, len(reservations.Reservations))
	handlers.RespondJSON(w, http.StatusOK, reservations)
}
