package reschedule_reservation

import (
	"time"

	"github.com/glamtime/GT-BookingService/internal/domain"
	rescheduleReservation "github.com/glamtime/GT-BookingService/internal/usecase/reschedule_reservation"
)

// RescheduleReservationRequest HTTP request model
type RescheduleReservationRequest struct {
	SlotID int64  `json:"slotId"`
	Date   string `json:"date"` // "2026-02-14"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        int64    `json:"id"`
	ClientID  string   `json:"clientId"`
	SlotID    int64    `json:"slotId"`
	ServiceID int64    `json:"serviceId"`
	Date      string   `json:"date"`
	State     string   `json:"state"`
	Price     *float64 `json:"price,omitempty"`
	Design    *string  `json:"design,omitempty"`
	Size      *string  `json:"size,omitempty"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleReservationRequest) ToUseCaseRequest(reservationID int64, actorID string) (*rescheduleReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &rescheduleReservation.Request{
		ReservationID: reservationID,
		ActorID:       actorID,
		NewSlotID:     r.SlotID,
		NewDate:       date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		ClientID:  resp.ClientID,
		SlotID:    resp.SlotID,
		ServiceID: resp.ServiceID,
		Date:      resp.Date.Format(domain.DateFormat),
		State:     resp.State,
		Price:     resp.Price,
		Design:    resp.Design,
		Size:      resp.Size,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
