package notifications

import (
	"context"

	"github.com/glamtime/GT-BookingService/internal/domain"
)

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	ListByRecipient(ctx context.Context, userID string, role domain.RecipientRole, unreadOnly bool) ([]*domain.Notification, error)
	CountUnread(ctx context.Context, userID string, role domain.RecipientRole) (int, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context, userID string, role domain.RecipientRole) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
