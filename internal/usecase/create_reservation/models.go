package create_reservation

import (
	"time"

	"github.com/glamtime/GT-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID  string    // ID клиента
	SlotID    int64     // ID слота мастера
	ServiceID int64     // ID услуги из каталога
	Date      time.Time // Дата бронирования (без времени)
	Design    *string   // Пожелания по дизайну (опционально)
	Size      *string   // Размер/длина (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64     // ID созданного бронирования
	ClientID  string    // ID клиента
	SlotID    int64     // ID слота
	ServiceID int64     // ID услуги
	Date      time.Time // Дата бронирования
	State     string    // Состояние бронирования
	Price     *float64  // Итоговая цена (заполняется при завершении)
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
