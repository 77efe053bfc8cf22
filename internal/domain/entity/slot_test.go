package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentSlots(t *testing.T) {
	slots := AppointmentSlots()

	require.Len(t, slots, 17)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "17:00", slots[len(slots)-1])
	assert.Contains(t, slots, "13:30")
	assert.NotContains(t, slots, "17:30")
}

func TestNormalizeSlot(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "on the grid", input: "10:30", want: "10:30", ok: true},
		{name: "single-digit hour is padded", input: "9:30", want: "09:30", ok: true},
		{name: "first slot", input: "09:00", want: "09:00", ok: true},
		{name: "last slot", input: "17:00", want: "17:00", ok: true},
		{name: "before opening", input: "08:30", ok: false},
		{name: "after closing", input: "17:30", ok: false},
		{name: "off the half-hour grid", input: "10:15", ok: false},
		{name: "not a clock time", input: "half past ten", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeSlot(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
