package get_notifications

import (
	"context"

	"github.com/glamtime/GT-BookingService/internal/service/notifications/models"
)

type NotificationService interface {
	List(ctx context.Context, userID string, role string, unreadOnly bool) (*models.NotificationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
