package get_provider_slots

import (
	"context"

	"github.com/glamtime/GT-BookingService/internal/service/slots/models"
)

type SlotService interface {
	ListByProvider(ctx context.Context, providerID string) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
