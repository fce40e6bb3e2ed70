package domain

import "time"

// ReservationState represents the state of a reservation
type ReservationState string

const (
	StatePending   ReservationState = "pending"
	StateConfirmed ReservationState = "confirmed"
	StateCompleted ReservationState = "completed"
	StateCancelled ReservationState = "cancelled"
)

// Reservation represents a booking of one slot on one calendar date.
// The time of the appointment comes from the referenced slot.
type Reservation struct {
	ID        int64
	SlotID    int64
	ClientID  string
	ServiceID int64
	Date      time.Time // calendar date, no time-of-day
	State     ReservationState

	// Price is set by the provider on completion and stays nil until then
	Price *float64

	// Free-text fields, opaque to the engine
	Design *string
	Size   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still consumes its slot
func (r *Reservation) IsActive() bool {
	return r.State != StateCancelled
}

// IsTerminal returns true if no further transition is allowed
func (r *Reservation) IsTerminal() bool {
	return r.State == StateCompleted || r.State == StateCancelled
}

// CanBeRescheduled returns true if the reservation can be moved to another slot/date
func (r *Reservation) CanBeRescheduled() bool {
	return r.State == StatePending || r.State == StateConfirmed
}

// ValidTransitionTarget reports whether state is a reachable target of the
// generic change-state operation. pending is the creation-only state and is
// never a transition target.
func ValidTransitionTarget(state ReservationState) bool {
	switch state {
	case StateConfirmed, StateCompleted, StateCancelled:
		return true
	default:
		return false
	}
}

// ClientTransitionTargets transitions the owning client may perform
var ClientTransitionTargets = []ReservationState{
	StateCancelled,
}

// ProviderTransitionTargets transitions the slot's provider may perform
var ProviderTransitionTargets = []ReservationState{
	StateConfirmed,
	StateCompleted,
	StateCancelled,
}
