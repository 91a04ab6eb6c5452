package booking

import "time"

const DefaultCancellationNotice = 6 * time.Hour

// CancellationPolicy gates cancel actions from customers and barbers alike.
type CancellationPolicy struct {
	MinNotice time.Duration
	Location  *time.Location
}

func NewCancellationPolicy(minNotice time.Duration, loc *time.Location) CancellationPolicy {
	if minNotice <= 0 {
		minNotice = DefaultCancellationNotice
	}
	if loc == nil {
		loc = time.UTC
	}
	return CancellationPolicy{MinNotice: minNotice, Location: loc}
}

// CanCancel is false for terminal bookings and when less than MinNotice
// remains before the scheduled instant.
func (p CancellationPolicy) CanCancel(b Booking, now time.Time) bool {
	if b.Status.IsTerminal() {
		return false
	}

	at, err := b.ScheduledAt(p.Location)
	if err != nil {
		return false
	}

	return at.Sub(now) >= p.MinNotice
}
