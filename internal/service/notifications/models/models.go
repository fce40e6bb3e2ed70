package models

import (
	"time"

	"github.com/glamtime/GT-BookingService/internal/domain"
)

// NotificationResponse ответ с данными уведомления
type NotificationResponse struct {
	ID            int64   `json:"id"`
	ReservationID int64   `json:"reservationId"`
	Message       string  `json:"message"`
	ProviderID    *string `json:"providerId,omitempty"`
	ClientID      *string `json:"clientId,omitempty"`
	Read          bool    `json:"read"`
	CreatedAt     string  `json:"createdAt"` // ISO 8601
}

// NotificationListResponse ответ со списком уведомлений
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// UnreadCountResponse ответ со счетчиком непрочитанных уведомлений
type UnreadCountResponse struct {
	Count int `json:"count"`
}

// FromDomainNotification конвертирует domain модель в DTO
func FromDomainNotification(n *domain.Notification) *NotificationResponse {
	if n == nil {
		return nil
	}

	return &NotificationResponse{
		ID:            n.ID,
		ReservationID: n.ReservationID,
		Message:       n.Message,
		ProviderID:    n.ProviderID,
		ClientID:      n.ClientID,
		Read:          n.Read,
		CreatedAt:     n.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainNotificationList конвертирует список domain моделей в DTO
func FromDomainNotificationList(notifications []*domain.Notification) *NotificationListResponse {
	resp := &NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(notifications)),
	}

	for _, n := range notifications {
		if nResp := FromDomainNotification(n); nResp != nil {
			resp.Notifications = append(resp.Notifications, *nResp)
		}
	}

	return resp
}
