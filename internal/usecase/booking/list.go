package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
)

type ListBarberAgenda struct {
	deps Deps
}

func NewListBarberAgenda(deps Deps) *ListBarberAgenda {
	return &ListBarberAgenda{deps: deps.withDefaults()}
}

func (uc *ListBarberAgenda) Execute(
	ctx context.Context,
	barberID uint,
	date string,
) ([]dto.BookingListDTO, error) {

	profile, err := uc.deps.Directory.GetProfile(ctx, barberID)
	if err != nil {
		return nil, err
	}

	if _, err := domain.ParseDate(date, profile.Location); err != nil {
		return nil, domain.ErrInvalidDate
	}

	bookings, err := uc.deps.Bookings.FetchBookings(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		item := dto.BookingListDTO{
			ID:         b.ID,
			CustomerID: b.CustomerID,
			ServiceID:  b.ServiceID,
			Date:       b.Date,
			Time:       b.Time,
			Status:     string(b.Status),
			Price:      b.Price,
		}
		if at, err := b.ScheduledAt(profile.Location); err == nil {
			item.StartsAt = at
		}
		out = append(out, item)
	}

	return out, nil
}

type ListCustomerBookings struct {
	deps Deps
}

func NewListCustomerBookings(deps Deps) *ListCustomerBookings {
	return &ListCustomerBookings{deps: deps.withDefaults()}
}

func (uc *ListCustomerBookings) Execute(
	ctx context.Context,
	customerID uint,
) ([]domain.Booking, error) {
	return uc.deps.Bookings.ListForCustomer(ctx, customerID)
}
