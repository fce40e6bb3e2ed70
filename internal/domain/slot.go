package domain

import (
	"time"

	"github.com/glamtime/GT-BookingService/pkg/types"
)

// Slot represents a provider's recurring daily time window.
// A slot has no date component: the same window repeats every day and is
// consumed per calendar date by reservations.
type Slot struct {
	ID         int64
	ProviderID string
	StartTime  types.TimeString
	EndTime    types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Overlaps reports whether the slot's [StartTime, EndTime) interval overlaps
// the [start, end) interval. Half-open semantics: touching boundaries
// (09:00-10:00 and 10:00-11:00) are not an overlap.
func (s *Slot) Overlaps(start, end types.TimeString) bool {
	return s.StartTime.IsBefore(end) && s.EndTime.IsAfter(start)
}
