package booking

import "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"

type Slot struct {
	Time            string `json:"time"`
	IsTaken         bool   `json:"is_taken"`
	IsRequestedByMe bool   `json:"is_requested_by_me"`
}

func (s Slot) Selectable() bool {
	return !s.IsTaken && !s.IsRequestedByMe
}

// Classify marks each slot against the bookings of one barber on one date.
//
// Only an accepted booking takes a slot. Pending requests from other
// customers leave it open so they can race for it; the customer's own
// pending request marks it as requested.
func Classify(slots []schedule.TimeOfDay, bookings []Booking, customerID uint) []Slot {
	taken := make(map[string]bool, len(bookings))
	mine := make(map[string]bool)

	for _, b := range bookings {
		switch b.Status {
		case StatusAccepted:
			taken[b.Time] = true
		case StatusPending:
			if customerID != 0 && b.CustomerID == customerID {
				mine[b.Time] = true
			}
		}
	}

	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		key := s.String()
		out = append(out, Slot{
			Time:            key,
			IsTaken:         taken[key],
			IsRequestedByMe: mine[key],
		})
	}
	return out
}

// Find returns the classified slot at hm.
func Find(slots []Slot, hm string) (Slot, bool) {
	for _, s := range slots {
		if s.Time == hm {
			return s, true
		}
	}
	return Slot{}, false
}
