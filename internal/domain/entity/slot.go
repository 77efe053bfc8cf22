package entity

import (
	"fmt"
	"time"
)

const (
	slotFormat    = "15:04"
	firstSlotHour = 9
	lastSlotHour  = 17
)

// AppointmentSlots returns the bookable half-hour grid: 09:00 through 17:00,
// with no slot after 17:00.
func AppointmentSlots() []string {
	slots := make([]string, 0, 2*(lastSlotHour-firstSlotHour)+1)
	for h := firstSlotHour; h <= lastSlotHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
		if h != lastSlotHour {
			slots = append(slots, fmt.Sprintf("%02d:30", h))
		}
	}
	return slots
}

// NormalizeSlot parses a clock time, pads single-digit hours ("9:30" becomes
// "09:30"), and reports whether the result lands on the booking grid.
func NormalizeSlot(s string) (string, bool) {
	t, err := time.Parse(slotFormat, s)
	if err != nil {
		return "", false
	}

	hour, minute := t.Hour(), t.Minute()
	if minute != 0 && minute != 30 {
		return "", false
	}
	if hour < firstSlotHour || hour > lastSlotHour {
		return "", false
	}
	if hour == lastSlotHour && minute != 0 {
		return "", false
	}

	return t.Format(slotFormat), true
}
