package get_provider_reservations

import (
	"context"

	"github.com/glamtime/GT-BookingService/internal/service/reservations/models"
)

type ReservationService interface {
	ListByProvider(ctx context.Context, req *models.ListProviderReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
