package reschedule_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_reservation: invalid input data")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reschedule_reservation: reservation not found")

	// ErrSlotNotFound возвращается, когда целевой слот не найден
	ErrSlotNotFound = errors.New("reschedule_reservation: slot not found")

	// ErrAccessDenied возвращается, когда переносить пытается не владелец бронирования
	ErrAccessDenied = errors.New("reschedule_reservation: access denied")

	// ErrInvalidState возвращается при попытке перенести завершенное или отмененное бронирование
	ErrInvalidState = errors.New("reschedule_reservation: reservation cannot be rescheduled in its current state")

	// ErrSlotTaken возвращается, когда целевой слот уже занят на эту дату
	ErrSlotTaken = errors.New("reschedule_reservation: slot is already reserved for this date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_reservation: internal error")
)
