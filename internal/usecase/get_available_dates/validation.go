package get_available_dates

import (
	"fmt"

	"github.com/glamtime/GT-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProviderID == "" {
		return fmt.Errorf("%w: providerID is required", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidRange)
	}

	days := int(req.EndDate.Sub(req.StartDate).Hours()/24) + 1
	if days > domain.MaxDateRangeDays {
		return fmt.Errorf("%w: range must not exceed %d days", ErrInvalidRange, domain.MaxDateRangeDays)
	}

	return nil
}
