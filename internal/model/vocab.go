package model

// The weekly grid is a closed vocabulary: six named days by five fixed
// time slots. Neither set is user-extensible.

// Days in grid order.
var Days = []string{"Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

// TimeSlots in chronological order.
var TimeSlots = []string{
	"07:00 - 08:40",
	"09:00 - 10:40",
	"11:00 - 12:40",
	"13:00 - 14:40",
	"15:00 - 16:40",
}

// ValidDay reports whether day is one of the six recognized names.
func ValidDay(day string) bool {
	for _, d := range Days {
		if d == day {
			return true
		}
	}
	return false
}

// ValidTimeSlot reports whether slot is one of the five fixed slots.
func ValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
