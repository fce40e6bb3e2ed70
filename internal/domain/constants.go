package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxMessageLength  = 500
	MaxFreeTextLength = 255
	MaxDateRangeDays  = 365 // максимальный диапазон для поиска доступных дат
)

// ReservationFilter фильтр для выборки бронирований поставщика
type ReservationFilter struct {
	ProviderID string            // Обязательный параметр
	Date       *string           // Конкретная дата YYYY-MM-DD (опционально)
	State      *ReservationState // Фильтр по состоянию (опционально)
}
