package reschedule_reservation

import (
	"time"

	"github.com/glamtime/GT-BookingService/internal/domain"
)

// Request модель запроса на перенос бронирования
type Request struct {
	ReservationID int64     // ID переносимого бронирования
	ActorID       string    // ID инициатора (должен совпадать с клиентом)
	NewSlotID     int64     // ID целевого слота
	NewDate       time.Time // Новая дата бронирования
}

// Response модель ответа с перенесенным бронированием
type Response struct {
	ID        int64     // ID бронирования
	ClientID  string    // ID клиента
	SlotID    int64     // ID слота после переноса
	ServiceID int64     // ID услуги
	Date      time.Time // Дата после переноса
	State     string    // Состояние бронирования
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
