package get_notifications

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

// Handle GET /api/v1/notifications?role=client&unreadOnly=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /notifications - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	role := r.URL.Query().Get("role")
	unreadOnly := r.URL.Query().Get("unreadOnly") == "true"

	notificationList, err := h.service.List(r.Context(), userID, role, unreadOnly)
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrInvalidRole):
			h.logger.Warn("GET /notifications - Invalid role: role=%s", role)
			handlers.RespondBadRequest(w, msgInvalidRole)

		default:
			h.logger.Error("GET /notifications - Failed to list notifications: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /notifications - Notifications retrieved: user_id=%s, role=%s, count=%d",
		userID, role, len(notificationList.Notifications))
	handlers.RespondJSON(w, http.StatusOK, notificationList)
}
