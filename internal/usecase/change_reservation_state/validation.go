package change_reservation_state

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	if req.ActorID == "" {
		return fmt.Errorf("%w: actorID is required", ErrInvalidInput)
	}

	if req.TargetState == "" {
		return fmt.Errorf("%w: state is required", ErrInvalidInput)
	}

	return nil
}
