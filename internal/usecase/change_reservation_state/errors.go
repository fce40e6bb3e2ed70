package change_reservation_state

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("change_reservation_state: invalid input data")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("change_reservation_state: reservation not found")

	// ErrAccessDenied возвращается, когда инициатор не имеет прав на переход
	ErrAccessDenied = errors.New("change_reservation_state: access denied")

	// ErrInvalidState возвращается при недопустимом переходе состояния
	ErrInvalidState = errors.New("change_reservation_state: invalid state transition")

	// ErrInvalidPrice возвращается при отрицательной итоговой цене
	ErrInvalidPrice = errors.New("change_reservation_state: price must be non-negative")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("change_reservation_state: internal error")
)
