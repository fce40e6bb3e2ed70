package reservations

import (
	"context"

	"github.com/glamtime/GT-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Reservation, error)
	ListByProvider(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
}

// NotificationDispatcher интерфейс диспетчера уведомлений
// Вызовы best-effort: ошибки канала уведомлений не влияют на результат операции
type NotificationDispatcher interface {
	NotifyProvider(ctx context.Context, reservationID int64, message string, providerID string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
