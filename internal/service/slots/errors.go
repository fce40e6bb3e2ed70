package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot not found")

	// ErrProviderNotFound возвращается, когда поставщик не найден
	ErrProviderNotFound = errors.New("provider not found")

	// ErrInvalidTimeRange возвращается, когда время начала не раньше времени конца
	ErrInvalidTimeRange = errors.New("start time must be before end time")

	// ErrSlotOverlap возвращается, когда интервал пересекается с существующим слотом
	ErrSlotOverlap = errors.New("slot overlaps with an existing slot")

	// ErrSlotHasReservations возвращается при попытке удалить слот
	// с активными бронированиями
	ErrSlotHasReservations = errors.New("slot has active reservations")

	// ErrAccessDenied возвращается, когда слот принадлежит другому поставщику
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots service: internal error")
)
