package domain

// Reservations are offered at a fixed set of half-hour slots around lunch and
// dinner service.
var timeSlots = []string{
	"11:00 AM", "11:30 AM", "12:00 PM", "12:30 PM",
	"1:00 PM", "1:30 PM", "5:00 PM", "5:30 PM",
	"6:00 PM", "6:30 PM", "7:00 PM", "7:30 PM",
	"8:00 PM", "8:30 PM",
}

// TimeSlots returns the bookable time slots in service order.
func TimeSlots() []string {
	return timeSlots
}

// ValidTimeSlot reports whether value is one of the offered slots.
func ValidTimeSlot(value string) bool {
	for _, slot := range timeSlots {
		if slot == value {
			return true
		}
	}
	return false
}
