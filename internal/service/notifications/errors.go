package notifications

import "errors"

var (
	// ErrNotificationNotFound возвращается, когда уведомление не найдено
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrInvalidRole возвращается при некорректной роли получателя
	ErrInvalidRole = errors.New("invalid recipient role, expected 'client' or 'provider'")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("notifications service: internal error")
)
