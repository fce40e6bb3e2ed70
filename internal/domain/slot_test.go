package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glamtime/GT-BookingService/pkg/types"
)

func TestSlot_Overlaps(t *testing.T) {
	slot := &Slot{StartTime: "10:00", EndTime: "11:00"}

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{name: "identical interval", start: "10:00", end: "11:00", want: true},
		{name: "contained inside", start: "10:15", end: "10:45", want: true},
		{name: "overlaps start", start: "09:30", end: "10:30", want: true},
		{name: "overlaps end", start: "10:30", end: "11:30", want: true},
		{name: "covers slot", start: "09:00", end: "12:00", want: true},
		{name: "touches start boundary", start: "09:00", end: "10:00", want: false},
		{name: "touches end boundary", start: "11:00", end: "12:00", want: false},
		{name: "fully before", start: "08:00", end: "09:00", want: false},
		{name: "fully after", start: "12:00", end: "13:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slot.Overlaps(types.TimeString(tt.start), types.TimeString(tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}
