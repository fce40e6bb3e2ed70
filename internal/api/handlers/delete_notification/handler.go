package delete_notification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glamtime/GT-BookingService/internal/api/handlers"
	"github.com/glamtime/GT-BookingService/internal/service/notifications"
)

const (
	msgInvalidNotificationID = "некорректный ID уведомления"
	msgNotFound              = "уведомление не найдено"
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

// Handle DELETE /api/v1/notifications/{notificationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	notificationID, err := strconv.ParseInt(mux.Vars(r)["notificationId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /notifications/{id} - Invalid notification ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	if err := h.service.Delete(r.Context(), notificationID); err != nil {
		switch {
		case errors.Is(err, notifications.ErrNotificationNotFound):
			h.logger.Warn("DELETE /notifications/{id} - Notification not found: notification_id=%d", notificationID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /notifications/{id} - Failed to delete: notification_id=%d, error=%v", notificationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /notifications/{id} - Notification deleted: notification_id=%d", notificationID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
