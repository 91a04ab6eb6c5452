package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingUseCases struct {
	Request      *ucBooking.RequestBooking
	Accept       *ucBooking.AcceptBooking
	Reject       *ucBooking.RejectBooking
	Cancel       *ucBooking.CancelBooking
	Complete     *ucBooking.CompleteBooking
	NoShow       *ucBooking.MarkNoShow
	Agenda       *ucBooking.ListBarberAgenda
	ForCustomer  *ucBooking.ListCustomerBookings
	Availability *ucBooking.GetAvailability
}

// NewBookingUseCases wires every booking use case over the same deps.
func NewBookingUseCases(deps ucBooking.Deps) BookingUseCases {
	return BookingUseCases{
		Request:      ucBooking.NewRequestBooking(deps),
		Accept:       ucBooking.NewAcceptBooking(deps),
		Reject:       ucBooking.NewRejectBooking(deps),
		Cancel:       ucBooking.NewCancelBooking(deps),
		Complete:     ucBooking.NewCompleteBooking(deps),
		NoShow:       ucBooking.NewMarkNoShow(deps),
		Agenda:       ucBooking.NewListBarberAgenda(deps),
		ForCustomer:  ucBooking.NewListCustomerBookings(deps),
		Availability: ucBooking.NewGetAvailability(deps),
	}
}

type BookingHandler struct {
	uc BookingUseCases
}

func NewBookingHandler(uc BookingUseCases) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required,isodate"`
	Time      string `json:"time" binding:"required,hhmm"`
}

type AcceptBookingResponse struct {
	Booking  *domain.Booking `json:"booking"`
	Rejected []string        `json:"rejected"`
	Warnings []string        `json:"warnings,omitempty"`
}

// ======================================================
// CUSTOMER
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.uc.Request.Execute(c.Request.Context(), ucBooking.RequestInput{
		CustomerID: middleware.UserID(c),
		BarberID:   req.BarberID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		Time:       req.Time,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_create_booking")
		return
	}

	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	items, err := h.uc.ForCustomer.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_bookings")
		return
	}
	httpresp.List(c, items)
}

func (h *BookingHandler) CancelMine(c *gin.Context) {
	h.cancel(c, ucBooking.ActorCustomer)
}

// ======================================================
// BARBER
// ======================================================

func (h *BookingHandler) ListAgenda(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter date is required.")
		return
	}

	items, err := h.uc.Agenda.Execute(c.Request.Context(), middleware.UserID(c), date)
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_bookings")
		return
	}
	httpresp.List(c, items)
}

func (h *BookingHandler) Accept(c *gin.Context) {
	in, ok := transitionInput(c)
	if !ok {
		return
	}

	res, err := h.uc.Accept.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err, "failed_to_accept_booking")
		return
	}

	out := AcceptBookingResponse{Booking: res.Booking, Rejected: res.Rejected}
	if out.Rejected == nil {
		out.Rejected = []string{}
	}
	if res.Warning != nil {
		out.Warnings = []string{res.Warning.Error()}
	}
	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) Reject(c *gin.Context) {
	h.move(c, h.uc.Reject.Execute, "failed_to_reject_booking")
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.move(c, h.uc.Complete.Execute, "failed_to_complete_booking")
}

func (h *BookingHandler) NoShow(c *gin.Context) {
	h.move(c, h.uc.NoShow.Execute, "failed_to_mark_no_show")
}

func (h *BookingHandler) CancelAsBarber(c *gin.Context) {
	h.cancel(c, ucBooking.ActorBarber)
}

// ======================================================
// HELPERS
// ======================================================

type moveFunc func(ctx context.Context, in ucBooking.TransitionInput) (*domain.Booking, error)

func (h *BookingHandler) move(c *gin.Context, fn moveFunc, fallback string) {
	in, ok := transitionInput(c)
	if !ok {
		return
	}

	b, err := fn(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err, fallback)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) cancel(c *gin.Context, actor ucBooking.Actor) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.uc.Cancel.Execute(c.Request.Context(), ucBooking.CancelInput{
		ActorID:   middleware.UserID(c),
		Actor:     actor,
		BookingID: id,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_cancel_booking")
		return
	}
	c.JSON(http.StatusOK, b)
}

func transitionInput(c *gin.Context) (ucBooking.TransitionInput, bool) {
	id, ok := bookingID(c)
	if !ok {
		return ucBooking.TransitionInput{}, false
	}
	return ucBooking.TransitionInput{BarberID: middleware.UserID(c), BookingID: id}, true
}

// bookingID rejects ids the store could never hold as not found.
func bookingID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		httperr.Respond(c, domain.ErrBookingNotFound, "")
		return "", false
	}
	return id, true
}
