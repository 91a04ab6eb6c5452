package booking

import (
	"fmt"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	dateTimeLayout = DateLayout + " " + TimeLayout
)

type Booking struct {
	ID         string    `json:"id"`
	CustomerID uint      `json:"customer_id"`
	BarberID   uint      `json:"barber_id"`
	ServiceID  uint      `json:"service_id"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Status     Status    `json:"status"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
}

// SameSlot reports whether both bookings target the same barber, date and time.
func (b Booking) SameSlot(other Booking) bool {
	return b.BarberID == other.BarberID && b.Date == other.Date && b.Time == other.Time
}

// ScheduledAt resolves date and time to an instant in loc.
func (b Booking) ScheduledAt(loc *time.Location) (time.Time, error) {
	return ParseDateTime(b.Date, b.Time, loc)
}

// Validate checks the wire formats the stores must round-trip.
func (b Booking) Validate() error {
	if _, err := ParseDate(b.Date, time.UTC); err != nil {
		return fmt.Errorf("booking %s: %w", b.ID, err)
	}
	if _, err := time.Parse(TimeLayout, b.Time); err != nil || len(b.Time) != len(TimeLayout) {
		return fmt.Errorf("booking %s: invalid time %q", b.ID, b.Time)
	}
	if _, ok := ParseStatus(string(b.Status)); !ok {
		return fmt.Errorf("booking %s: unknown status %q", b.ID, b.Status)
	}
	return nil
}

// ===============================
// Date helpers
// ===============================

func ParseDate(date string, loc *time.Location) (time.Time, error) {
	if len(date) != len(DateLayout) {
		return time.Time{}, fmt.Errorf("invalid date %q", date)
	}
	t, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", date)
	}
	return t, nil
}

func ParseDateTime(date, hm string, loc *time.Location) (time.Time, error) {
	if len(date) != len(DateLayout) || len(hm) != len(TimeLayout) {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q", date, hm)
	}
	t, err := time.ParseInLocation(dateTimeLayout, date+" "+hm, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q", date, hm)
	}
	return t, nil
}
