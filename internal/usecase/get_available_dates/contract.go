package get_available_dates

import (
	"context"

	"github.com/glamtime/GT-BookingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListByProvider(ctx context.Context, providerID string) ([]*domain.Slot, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	CountActiveByDateRange(ctx context.Context, providerID string, startDate, endDate string) (map[string]int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
