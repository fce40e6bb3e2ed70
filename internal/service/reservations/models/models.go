package models

import (
	"errors"
	"time"

	"github.com/glamtime/GT-BookingService/internal/domain"
)

var (
	// ErrInvalidState возвращается при некорректном состоянии бронирования
	ErrInvalidState = errors.New("invalid reservation state")
)

// Request модели

// ListProviderReservationsRequest запрос на выборку бронирований поставщика
type ListProviderReservationsRequest struct {
	ProviderID string
	Date       *string // конкретная дата YYYY-MM-DD (опционально)
	State      *string // фильтр по состоянию (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListProviderReservationsRequest) ToDomainFilter() (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{
		ProviderID: r.ProviderID,
		Date:       r.Date,
	}

	if r.State != nil {
		state, err := ToDomainState(*r.State)
		if err != nil {
			return filter, err
		}
		filter.State = &state
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID        int64    `json:"id"`
	SlotID    int64    `json:"slotId"`
	ClientID  string   `json:"clientId"`
	ServiceID int64    `json:"serviceId"`
	Date      string   `json:"date"` // "2026-02-14"
	State     string   `json:"state"`
	Price     *float64 `json:"price,omitempty"`
	Design    *string  `json:"design,omitempty"`
	Size      *string  `json:"size,omitempty"`
	CreatedAt string   `json:"createdAt"` // ISO 8601
	UpdatedAt string   `json:"updatedAt"` // ISO 8601
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:        r.ID,
		SlotID:    r.SlotID,
		ClientID:  r.ClientID,
		ServiceID: r.ServiceID,
		Date:      r.Date.Format(domain.DateFormat),
		State:     string(r.State),
		Price:     r.Price,
		Design:    r.Design,
		Size:      r.Size,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if rResp := FromDomainReservation(r); rResp != nil {
			resp.Reservations = append(resp.Reservations, *rResp)
		}
	}

	return resp
}

// ToDomainState конвертирует строку в domain.ReservationState с валидацией
func ToDomainState(state string) (domain.ReservationState, error) {
	s := domain.ReservationState(state)

	switch s {
	case domain.StatePending, domain.StateConfirmed, domain.StateCompleted, domain.StateCancelled:
		return s, nil
	default:
		return "", ErrInvalidState
	}
}
