package slots

import (
	"context"

	"github.com/glamtime/GT-BookingService/internal/domain"
	"github.com/glamtime/GT-BookingService/internal/integrations/userservice"
	"github.com/glamtime/GT-BookingService/pkg/types"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error)
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	ListByProvider(ctx context.Context, providerID string) ([]*domain.Slot, error)
	FindOverlapping(ctx context.Context, providerID string, start, end types.TimeString, excludeID *int64) (*domain.Slot, error)
	Update(ctx context.Context, s *domain.Slot) (*domain.Slot, error)
	Delete(ctx context.Context, id int64) error
}

// ReservationRepository интерфейс репозитория бронирований
// Нужен для защиты от удаления слота с активными бронированиями
type ReservationRepository interface {
	CountActiveBySlot(ctx context.Context, slotID int64) (int, error)
}

// UserServiceClient интерфейс клиента справочника пользователей
type UserServiceClient interface {
	GetProvider(ctx context.Context, providerID string) (*userservice.Provider, error)
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
