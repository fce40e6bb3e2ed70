package change_reservation_state

import (
	"time"

	"github.com/glamtime/GT-BookingService/internal/domain"
	changeReservationState "github.com/glamtime/GT-BookingService/internal/usecase/change_reservation_state"
)

// ChangeStateRequest HTTP request model
type ChangeStateRequest struct {
	State string   `json:"state"`           // "confirmed" | "completed" | "cancelled"
	Price *float64 `json:"price,omitempty"` // учитывается только при "completed"
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
func (r *ChangeStateRequest) ToUseCaseRequest(reservationID int64, actorID string) *changeReservationState.Request {
	return &changeReservationState.Request{
		ReservationID: reservationID,
		ActorID:       actorID,
		TargetState:   r.State,
		Price:         r.Price,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *changeReservationState.Response) *ReservationResponse {
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
