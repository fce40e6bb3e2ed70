package get_available_slots

import (
	"time"

	"github.com/glamtime/GT-BookingService/internal/domain"
	"github.com/glamtime/GT-BookingService/pkg/types"
)

// Request модель запроса на получение свободных слотов мастера
type Request struct {
	ProviderID string    // ID мастера
	Date       time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	ProviderID string    // ID мастера
	Date       time.Time // Дата, на которую запрашивались слоты
	Slots      []Slot    // Свободные слоты в порядке времени начала
}

// Slot модель свободного слота
type Slot struct {
	ID        int64            // ID слота
	StartTime types.TimeString // Время начала (например, "10:00")
	EndTime   types.TimeString // Время окончания
}

// fromDomainSlot преобразует доменный слот в модель ответа
func fromDomainSlot(s *domain.Slot) Slot {
	return Slot{
		ID:        s.ID,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}
