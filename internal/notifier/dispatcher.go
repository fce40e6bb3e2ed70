package notifier

import (
	"context"

	"github.com/glamtime/GT-BookingService/internal/domain"
	"github.com/glamtime/GT-BookingService/pkg/ptr"
)

// Dispatcher создает адресные уведомления по событиям жизненного цикла бронирования.
// Работает по принципу best-effort: собственные ошибки логирует и не возвращает,
// чтобы сбой канала уведомлений никогда не откатывал бизнес-операцию
type Dispatcher struct {
	repo   NotificationRepository
	logger Logger
}

// NewDispatcher создает новый экземпляр диспетчера уведомлений
func NewDispatcher(repo NotificationRepository, logger Logger) *Dispatcher {
	return &Dispatcher{
		repo:   repo,
		logger: logger,
	}
}

// NotifyProvider создает уведомление для поставщика
// (клиент создал/перенес/отменил бронирование)
func (d *Dispatcher) NotifyProvider(ctx context.Context, reservationID int64, message string, providerID string) {
	d.dispatch(ctx, &domain.Notification{
		ReservationID: reservationID,
		Message:       truncate(message),
		ProviderID:    ptr.Ptr(providerID),
	})
}

// NotifyClient создает уведомление для клиента
// (поставщик изменил состояние бронирования)
func (d *Dispatcher) NotifyClient(ctx context.Context, reservationID int64, message string, clientID string) {
	d.dispatch(ctx, &domain.Notification{
		ReservationID: reservationID,
		Message:       truncate(message),
		ClientID:      ptr.Ptr(clientID),
	})
}

func (d *Dispatcher) dispatch(ctx context.Context, n *domain.Notification) {
	if _, err := d.repo.Create(ctx, n); err != nil {
		d.logger.Error("notifier: failed to create notification for reservation id=%d: %v", n.ReservationID, err)
		return
	}
	d.logger.Info("notifier: notification created for reservation id=%d", n.ReservationID)
}

// truncate обрезает сообщение до максимальной длины колонки.
// Лимит колонки - в символах, поэтому режем по рунам:
// срез по байтам может разрубить многобайтовую руну посередине
func truncate(message string) string {
	runes := []rune(message)
	if len(runes) > domain.MaxMessageLength {
		return string(runes[:domain.MaxMessageLength])
	}
	return message
}
