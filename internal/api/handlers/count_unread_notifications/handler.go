package count_unread_notifications

import (
	"errors"
	"net/http"

	"github.com/glamtime/GT-BookingService/internal/api/handlers"
	"github.com/glamtime/GT-BookingService/internal/api/middleware"
	"github.com/glamtime/GT-BookingService/internal/service/notifications"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidRole   = "некорректная роль, ожидается client или provider"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/notifications/unread-count?role=client
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /notifications/unread-count - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	role := r.URL.Query().Get("role")

	count, err := h.service.CountUnread(r.Context(), userID, role)
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrInvalidRole):
			h.logger.Warn("GET /notifications/unread-count - Invalid role: role=%s", role)
			handlers.RespondBadRequest(w, msgInvalidRole)

		default:
			h.logger.Error("GET /notifications/unread-count - Failed to count: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /notifications/unread-count - Count retrieved: user_id=%s, role=%s, count=%d",
		userID, role, count.Count)
	handlers.RespondJSON(w, http.StatusOK, count)
}
