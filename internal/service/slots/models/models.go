package models

import (
	"time"

	"github.com/glamtime/GT-BookingService/internal/domain"
	"github.com/glamtime/GT-BookingService/pkg/types"
)

// Request модели

// CreateSlotRequest запрос на создание слота
type CreateSlotRequest struct {
	ProviderID string
	StartTime  types.TimeString
	EndTime    types.TimeString
}

// UpdateSlotRequest запрос на обновление слота
type UpdateSlotRequest struct {
	ProviderID string
	StartTime  types.TimeString
	EndTime    types.TimeString
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID         int64  `json:"id"`
	ProviderID string `json:"providerId"`
	StartTime  string `json:"startTime"` // "09:00"
	EndTime    string `json:"endTime"`   // "10:00"
	CreatedAt  string `json:"createdAt"` // ISO 8601
	UpdatedAt  string `json:"updatedAt"` // ISO 8601
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	if s == nil {
		return nil
	}

	return &SlotResponse{
		ID:         s.ID,
		ProviderID: s.ProviderID,
		StartTime:  s.StartTime.String(),
		EndTime:    s.EndTime.String(),
		CreatedAt:  s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  s.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.Slot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}

	for _, s := range slots {
		if slotResp := FromDomainSlot(s); slotResp != nil {
			resp.Slots = append(resp.Slots, *slotResp)
		}
	}

	return resp
}
