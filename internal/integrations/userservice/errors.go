package userservice

import "errors"

var (
	// ErrProviderNotFound возвращается, когда поставщик не найден в справочнике
	ErrProviderNotFound = errors.New("provider not found")

	// ErrClientNotFound возвращается, когда клиент не найден в справочнике
	ErrClientNotFound = errors.New("client not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("userservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("userservice client: invalid response")
)
