package domain

import "time"

// RecipientRole роль получателя уведомления
type RecipientRole string

const (
	RoleClient   RecipientRole = "client"
	RoleProvider RecipientRole = "provider"
)

// Notification represents a persisted message addressed to exactly one party
// of a reservation: either the provider or the client.
type Notification struct {
	ID            int64
	ReservationID int64
	Message       string

	// Exactly one of the two is set, depending on the recipient
	ProviderID *string
	ClientID   *string

	Read bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsForProvider returns true if the notification is addressed to a provider
func (n *Notification) IsForProvider() bool {
	return n.ProviderID != nil
}

// IsForClient returns true if the notification is addressed to a client
func (n *Notification) IsForClient() bool {
	return n.ClientID != nil
}
