package mark_all_notifications_read

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

// Handle POST /api/v1/notifications/read-all?role=client
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /notifications/read-all - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	role := r.URL.Query().Get("role")

	if err := h.service.MarkAllRead(r.Context(), userID, role); err != nil {
		switch {
		case errors.Is(err, notifications.ErrInvalidRole):
			h.logger.Warn("POST /notifications/read-all - Invalid role: role=%s", role)
			handlers.RespondBadRequest(w, msgInvalidRole)

		default:
			h.logger.Error("POST /notifications/read-all - Failed to mark all read: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /notifications/read-all - All notifications marked read: user_id=%s, role=%s", userID, role)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
