package change_reservation_state

import (
	"context"

	"github.com/glamtime/GT-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateState(ctx context.Context, id int64, state domain.ReservationState, price *float64) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
}

// NotificationDispatcher интерфейс диспетчера уведомлений
type NotificationDispatcher interface {
	NotifyProvider(ctx context.Context, reservationID int64, message string, providerID string)
	NotifyClient(ctx context.Context, reservationID int64, message string, clientID string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
