package get_available_slots

import (
	"github.com/glamtime/GT-BookingService/internal/domain"
	getAvailableSlots "github.com/glamtime/GT-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ProviderID string         `json:"providerId"`
	Date       string         `json:"date"` // "2026-02-14"
	Slots      []SlotResponse `json:"slots"`
}

// SlotResponse модель свободного слота
type SlotResponse struct {
	ID        int64  `json:"id"`
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "10:00"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		ProviderID: resp.ProviderID,
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			ID:        s.ID,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
		})
	}

	return out
}
