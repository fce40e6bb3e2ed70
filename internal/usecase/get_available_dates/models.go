package get_available_dates

import "time"

// Request модель запроса на получение дат со свободными слотами
type Request struct {
	ProviderID string    // ID мастера
	StartDate  time.Time // Начало диапазона (включительно)
	EndDate    time.Time // Конец диапазона (включительно)
}

// Response модель ответа со списком доступных дат
type Response struct {
	ProviderID string      // ID мастера
	Dates      []time.Time // Даты с хотя бы одним свободным слотом, по возрастанию
}
