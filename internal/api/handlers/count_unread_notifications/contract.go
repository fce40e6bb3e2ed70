package count_unread_notifications

import (
	"context"

	"github.com/glamtime/GT-BookingService/internal/service/notifications/models"
)

type NotificationService interface {
	CountUnread(ctx context.Context, userID string, role string) (*models.UnreadCountResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
