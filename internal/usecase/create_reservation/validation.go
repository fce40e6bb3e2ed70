package create_reservation

import (
	"fmt"

	"github.com/glamtime/GT-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID == "" {
		return fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}

	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := validateFreeText(req.Design, "design"); err != nil {
		return err
	}

	return validateFreeText(req.Size, "size")
}

// validateFreeText проверяет длину опционального текстового поля
func validateFreeText(value *string, field string) error {
	if value == nil {
		return nil
	}

	if len(*value) > domain.MaxFreeTextLength {
		return fmt.Errorf("%w: %s must not exceed %d characters", ErrInvalidInput, field, domain.MaxFreeTextLength)
	}

	return nil
}
