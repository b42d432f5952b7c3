package forms

import (
	"errors"
	"time"
)

// TimeSlot is one of the three fixed visit windows offered by the portal.
type TimeSlot struct {
	Value string // HH:MM start of the window
	Label string
}

var TimeSlots = []TimeSlot{
	{Value: "09:00", Label: "Morning (9 AM – 12 PM)"},
	{Value: "12:00", Label: "Afternoon (12 PM – 3 PM)"},
	{Value: "15:00", Label: "Evening (3 PM – 6 PM)"},
}

func ValidTimeSlot(value string) bool {
	for _, slot := range TimeSlots {
		if slot.Value == value {
			return true
		}
	}
	return false
}

var errBadDateSlot = errors.New("invalid date or time slot")

// CombineDateSlot merges a YYYY-MM-DD date and an HH:MM slot into a single
// local timestamp, the same composite the date and slot pickers produce.
func CombineDateSlot(date, slot string) (time.Time, error) {
	if date == "" || !ValidTimeSlot(slot) {
		return time.Time{}, errBadDateSlot
	}
	t, err := time.ParseInLocation("2006-01-02T15:04", date+"T"+slot, time.Local)
	if err != nil {
		return time.Time{}, errBadDateSlot
	}
	return t, nil
}
