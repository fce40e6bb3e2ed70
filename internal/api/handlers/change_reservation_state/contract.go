package change_reservation_state

import (
	"context"

	changeReservationState "github.com/glamtime/GT-BookingService/internal/usecase/change_reservation_state"
)

type ChangeReservationStateUseCase interface {
	Execute(ctx context.Context, req *changeReservationState.Request) (*changeReservationState.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
