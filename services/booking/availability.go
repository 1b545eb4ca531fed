package booking

import "haviaa/models"

// isSlotAvailable reports whether no active booking holds slot.
// Cancelled and completed bookings free their slot.
func isSlotAvailable(bookings []models.Booking, slot string) bool {
	for _, b := range bookings {
		if b.Status == models.BookingStatusActive && b.TimeSlot == slot {
			return false
		}
	}
	return true
}

// availableSlots returns allSlots minus the actively booked ones, keeping order.
func availableSlots(bookings []models.Booking, allSlots []string) []string {
	taken := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if b.Status == models.BookingStatusActive {
			taken[b.TimeSlot] = struct{}{}
		}
	}
	out := make([]string, 0, len(allSlots))
	for _, slot := range allSlots {
		if _, ok := taken[slot]; !ok {
			out = append(out, slot)
		}
	}
	return out
}

func hasActiveBooking(bookings []models.Booking, userID string) bool {
	for _, b := range bookings {
		if b.Status == models.BookingStatusActive && b.UserID == userID {
			return true
		}
	}
	return false
}

func indexOf(bookings []models.Booking, id string) int {
	for i := range bookings {
		if bookings[i].ID == id {
			return i
		}
	}
	return -1
}
