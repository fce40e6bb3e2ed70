package reschedule_reservation

import (
	"context"

	"github.com/glamtime/GT-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetActiveBySlotAndDate(ctx context.Context, slotID int64, date string) (*domain.Reservation, error)
	Reschedule(ctx context.Context, id int64, slotID int64, date string) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
}

// NotificationDispatcher интерфейс диспетчера уведомлений
type NotificationDispatcher interface {
	NotifyProvider(ctx context.Context, reservationID int64, message string, providerID string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
