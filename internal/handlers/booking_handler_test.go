package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

func TestAvailability_AnonymousAndCustomer(t *testing.T) {
	s := newTestServer(t)
	s.seed(t, customerA, "10:00", domain.StatusPending)
	s.seed(t, customerB, "11:00", domain.StatusAccepted)

	path := "/api/public/barbers/1/availability?date=" + bookingDay

	w := s.do(t, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	anon := decode[ucBooking.Availability](t, w)
	// 09,10,11 then 13..17
	require.Len(t, anon.Slots, 8)
	assert.False(t, anon.Slots[1].IsRequestedByMe)
	assert.True(t, anon.Slots[2].IsTaken)

	w = s.do(t, http.MethodGet, path, customerToken(t, customerA), nil)
	require.Equal(t, http.StatusOK, w.Code)
	mine := decode[ucBooking.Availability](t, w)
	assert.Equal(t, "10:00", mine.Slots[1].Time)
	assert.True(t, mine.Slots[1].IsRequestedByMe)

	w = s.do(t, http.MethodGet, path, customerToken(t, customerB), nil)
	theirs := decode[ucBooking.Availability](t, w)
	assert.False(t, theirs.Slots[1].IsRequestedByMe)
	assert.False(t, theirs.Slots[1].IsTaken)
}

func TestAvailability_BadInput(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/public/barbers/1/availability?date=10-01-2024", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/public/barbers/x/availability?date="+bookingDay, "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/public/barbers/99/availability?date="+bookingDay, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "barber_not_found", decode[httperr.HTTPError](t, w).Code)
}

func TestCreateBooking(t *testing.T) {
	s := newTestServer(t)
	tok := customerToken(t, customerA)

	body := CreateBookingRequest{BarberID: barberID, ServiceID: serviceID, Date: bookingDay, Time: "14:00"}

	w := s.do(t, http.MethodPost, "/api/bookings", tok, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	b := decode[domain.Booking](t, w)
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Equal(t, customerA, b.CustomerID)

	w = s.do(t, http.MethodPost, "/api/bookings", tok, body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "slot_unavailable", decode[httperr.HTTPError](t, w).Code)

	body.Time = "2pm"
	w = s.do(t, http.MethodPost, "/api/bookings", tok, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body.Time = "12:00"
	w = s.do(t, http.MethodPost, "/api/bookings", tok, body)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPost, "/api/bookings", barberToken(t), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodGet, "/api/bookings", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}

func TestAcceptBooking_HTTP(t *testing.T) {
	s := newTestServer(t)
	first := s.seed(t, customerA, "10:00", domain.StatusPending)
	second := s.seed(t, customerB, "10:00", domain.StatusPending)

	w := s.do(t, http.MethodPatch, "/api/me/bookings/"+first+"/accept", barberToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	res := decode[AcceptBookingResponse](t, w)
	assert.Equal(t, domain.StatusAccepted, res.Booking.Status)
	assert.Equal(t, []string{second}, res.Rejected)
	assert.Empty(t, res.Warnings)

	w = s.do(t, http.MethodPatch, "/api/me/bookings/"+second+"/accept", barberToken(t), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPatch, "/api/me/bookings/not-a-uuid/accept", barberToken(t), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/me/bookings?date="+bookingDay, barberToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":2`)

	w = s.do(t, http.MethodGet, "/api/me/bookings", barberToken(t), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAcceptBooking_WarningOnPartialFailure(t *testing.T) {
	s := newTestServer(t)
	first := s.seed(t, customerA, "10:00", domain.StatusPending)
	stuck := s.seed(t, customerB, "10:00", domain.StatusPending)

	s.store.FailSetStatus = func(id string, status domain.Status) error {
		if id == stuck {
			return assert.AnError
		}
		return nil
	}

	w := s.do(t, http.MethodPatch, "/api/me/bookings/"+first+"/accept", barberToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[AcceptBookingResponse](t, w)
	assert.Equal(t, domain.StatusAccepted, res.Booking.Status)
	assert.Empty(t, res.Rejected)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], stuck)
}

func TestCancelBooking_HTTP(t *testing.T) {
	s := newTestServer(t)
	soon := s.seed(t, customerA, "13:00", domain.StatusAccepted)
	later := s.seed(t, customerA, "17:00", domain.StatusAccepted)
	tok := customerToken(t, customerA)

	w := s.do(t, http.MethodPatch, "/api/bookings/"+soon+"/cancel", tok, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "cancellation_too_late", decode[httperr.HTTPError](t, w).Code)

	for i := 0; i < 2; i++ {
		w = s.do(t, http.MethodPatch, "/api/bookings/"+later+"/cancel", tok, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.StatusCancelled, decode[domain.Booking](t, w).Status)
	}

	w = s.do(t, http.MethodPatch, "/api/bookings/"+soon+"/cancel", customerToken(t, customerB), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBarberTransitions_HTTP(t *testing.T) {
	s := newTestServer(t)
	pending := s.seed(t, customerA, "09:00", domain.StatusPending)
	accepted := s.seed(t, customerB, "15:00", domain.StatusAccepted)
	other := s.seed(t, customerB, "16:00", domain.StatusAccepted)
	tok := barberToken(t)

	w := s.do(t, http.MethodPatch, "/api/me/bookings/"+pending+"/complete", tok, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "invalid_state", decode[httperr.HTTPError](t, w).Code)

	w = s.do(t, http.MethodPatch, "/api/me/bookings/"+pending+"/reject", tok, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPatch, "/api/me/bookings/"+accepted+"/no-show", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.StatusNoShow, decode[domain.Booking](t, w).Status)

	w = s.do(t, http.MethodPatch, "/api/me/bookings/"+other+"/cancel", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPatch, "/api/me/bookings/"+other+"/complete", tok, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}
