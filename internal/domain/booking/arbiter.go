package booking

// OnAccept returns the bookings that must move to rejected once accepted
// holds its slot: every other pending request for the same barber, date
// and time. Bookings at other slots and non-pending ones are left alone.
func OnAccept(accepted Booking, all []Booking) []Booking {
	var collisions []Booking
	for _, b := range all {
		if b.ID == accepted.ID || b.Status != StatusPending {
			continue
		}
		if b.SameSlot(accepted) {
			collisions = append(collisions, b)
		}
	}
	return collisions
}

// HeldBy returns the booking currently accepted at the slot of b, if any
// other than b itself.
func HeldBy(b Booking, all []Booking) (Booking, bool) {
	for _, other := range all {
		if other.ID != b.ID && other.Status == StatusAccepted && other.SameSlot(b) {
			return other, true
		}
	}
	return Booking{}, false
}
