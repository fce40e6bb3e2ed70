package create_reservation

import (
	"context"

	"github.com/glamtime/GT-BookingService/internal/domain"
	"github.com/glamtime/GT-BookingService/internal/integrations/catalogservice"
	"github.com/glamtime/GT-BookingService/internal/integrations/userservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetActiveBySlotAndDate(ctx context.Context, slotID int64, date string) (*domain.Reservation, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
}

// UserServiceClient интерфейс клиента справочника пользователей
type UserServiceClient interface {
	GetClient(ctx context.Context, clientID string) (*userservice.ClientInfo, error)
}

// CatalogServiceClient интерфейс клиента каталога услуг
type CatalogServiceClient interface {
	GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
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
