package get_available_dates

import (
	"github.com/glamtime/GT-BookingService/internal/domain"
	getAvailableDates "github.com/glamtime/GT-BookingService/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	ProviderID string   `json:"providerId"`
	Dates      []string `json:"dates"` // ["2026-02-14", ...]
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	out := &AvailableDatesResponse{
		ProviderID: resp.ProviderID,
		Dates:      make([]string, 0, len(resp.Dates)),
	}

	for _, d := range resp.Dates {
		out.Dates = append(out.Dates, d.Format(domain.DateFormat))
	}

	return out
}
