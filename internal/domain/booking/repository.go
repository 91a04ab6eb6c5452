package booking

import "context"

// Reader is the read side used to render availability.
type Reader interface {
	FetchBookings(ctx context.Context, barberID uint, date string) ([]Booking, error)
}

type Store interface {
	Reader

	// -------- Lookup --------
	GetBooking(ctx context.Context, id string) (*Booking, error)
	ListForCustomer(ctx context.Context, customerID uint) ([]Booking, error)

	// ListPendingUntil returns pending bookings dated on or before date.
	ListPendingUntil(ctx context.Context, date string) ([]Booking, error)

	// -------- Writes --------
	CreateBooking(ctx context.Context, b *Booking) error

	// SetStatus moves a booking along its lifecycle. Implementations return
	// ErrInvalidState for an illegal edge and ErrSlotUnavailable when
	// accepting would leave two accepted bookings on one slot.
	SetStatus(ctx context.Context, id string, status Status) error
}

// Refresher reloads a cached view of one barber's day.
type Refresher interface {
	Refresh(ctx context.Context, barberID uint, date string) error
}
