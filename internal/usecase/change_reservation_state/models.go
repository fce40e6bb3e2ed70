package change_reservation_state

import (
	"time"

	"github.com/glamtime/GT-BookingService/internal/domain"
)

// Request модель запроса на смену состояния бронирования
type Request struct {
	ReservationID int64    // ID бронирования
	ActorID       string   // ID инициатора (клиент-владелец или мастер слота)
	TargetState   string   // Целевое состояние (confirmed/completed/cancelled)
	Price         *float64 // Итоговая цена, учитывается только при переходе в completed
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID        int64     // ID бронирования
	ClientID  string    // ID клиента
	SlotID    int64     // ID слота
	ServiceID int64     // ID услуги
	Date      time.Time // Дата бронирования
	State     string    // Состояние после перехода
	Price     *float64  // Итоговая цена
	Design    *string   // Пожелания по дизайну
	Size      *string   // Размер/длина

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

// toResponse преобразует доменную модель в ответ usecase
func toResponse(res *domain.Reservation) *Response {
	return &Response{
		ID:        res.ID,
		ClientID:  res.ClientID,
		SlotID:    res.SlotID,
		ServiceID: res.ServiceID,
		Date:      res.Date,
		State:     string(res.State),
		Price:     res.Price,
		Design:    res.Design,
		Size:      res.Size,
		CreatedAt: res.CreatedAt,
		UpdatedAt: res.UpdatedAt,
	}
}
