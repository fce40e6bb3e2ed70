package catalogservice

// Service модель услуги из каталога
// ProviderID - владелец услуги (serviceOwner)
type Service struct {
	ID         int64    `json:"id"`
	ProviderID string   `json:"providerId"`
	Name       string   `json:"name"`
	Price      *float64 `json:"price,omitempty"`
	Duration   *int     `json:"duration,omitempty"` // минуты, информативно
}

// ErrorResponse модель ошибки от каталога услуг
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
