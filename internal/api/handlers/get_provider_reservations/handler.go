package get_provider_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/glamtime/GT-BookingService/internal/api/handlers"
	"github.com/glamtime/GT-BookingService/internal/api/middleware"
	"github.com/glamtime/GT-BookingService/internal/domain"
	"github.com/glamtime/GT-BookingService/internal/service/reservations"
	"github.com/glamtime/GT-BookingService/internal/service/reservations/models"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidState  = "некорректное состояние бронирования"
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

// Handle GET /api/v1/providers/{providerId}/reservations?date=YYYY-MM-DD&state=confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["providerId"]

	// Журнал бронирований доступен только самому мастеру
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /providers/{id}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if userID != providerID {
		h.logger.Warn("GET /providers/{id}/reservations - Access denied: provider_id=%s, user_id=%s", providerID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	req := &models.ListProviderReservationsRequest{
		ProviderID: providerID,
	}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		if _, err := time.Parse(domain.DateFormat, dateStr); err != nil {
			h.logger.Warn("GET /providers/{id}/reservations - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &dateStr
	}

	if stateStr := r.URL.Query().Get("state"); stateStr != "" {
		req.State = &stateStr
	}

	reservationList, err := h.service.ListByProvider(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/reservations - Invalid filter: provider_id=%s, error=%v", providerID, err)
			handlers.RespondBadRequest(w, msgInvalidState)

		default:
			h.logger.Error("GET /providers/{id}/reservations - Failed to list reservations: provider_id=%s, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/reservations - Reservations retrieved: provider_id=%s, count=%d",
		providerID, len(reservationList.Reservations))
	handlers.RespondJSON(w, http.StatusOK, reservationList)
}
