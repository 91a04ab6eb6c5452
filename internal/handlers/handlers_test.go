package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/domain/barber"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memory"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
	ucSchedule "github.com/BruksfildServices01/barber-booking/internal/usecase/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

const (
	secret          = "test-secret"
	barberID   uint = 1
	shopID     uint = 7
	serviceID  uint = 3
	customerA  uint = 100
	customerB  uint = 200
	bookingDay      = "2024-01-10"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := validators.Register(); err != nil {
		panic(err)
	}
}

type testServer struct {
	router *gin.Engine
	store  *memory.BookingStore
}

// newTestServer mounts the booking, availability and schedule routes over
// in-memory stores. The clock sits at 08:00 UTC on a Wednesday.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store := memory.NewBookingStore()
	schedules := memory.NewScheduleStore()
	dir := memory.NewDirectory()

	dir.PutProfile(barber.Profile{ID: barberID, BarbershopID: shopID, Timezone: "UTC", Location: time.UTC, SlotInterval: 60})
	dir.PutService(barber.Service{ID: serviceID, BarbershopID: shopID, Name: "Cut", Price: 40, Active: true})

	require.NoError(t, schedules.SaveSchedule(context.Background(), barberID, schedule.Config{
		Days: []schedule.WorkingDay{{
			Weekday: time.Wednesday, Enabled: true,
			Start: schedule.MustTimeOfDay("09:00"), End: schedule.MustTimeOfDay("18:00"),
			Breaks: []schedule.Break{{Start: schedule.MustTimeOfDay("12:00"), End: schedule.MustTimeOfDay("13:00")}},
		}},
	}))

	clock := timezone.FixedClock{At: time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)}

	uc := NewBookingUseCases(ucBooking.Deps{
		Bookings:  store,
		Schedules: schedules,
		Directory: dir,
		Clock:     clock,
		Logger:    zerolog.Nop(),
	})

	bookings := NewBookingHandler(uc)
	public := NewPublicHandler(nil, uc.Availability)
	sched := NewScheduleHandler(
		ucSchedule.NewGetSchedule(schedules),
		ucSchedule.NewSaveSchedule(schedules, nil, nil, clock, zerolog.Nop()),
	)

	r := gin.New()
	api := r.Group("/api")

	api.GET("/public/barbers/:barberId/availability", middleware.OptionalAuth(secret), public.Availability)

	customer := api.Group("/bookings", middleware.AuthMiddleware(secret), middleware.RequireRole("customer"))
	customer.POST("", bookings.Create)
	customer.GET("", bookings.ListMine)
	customer.PATCH("/:id/cancel", bookings.CancelMine)

	me := api.Group("/me", middleware.AuthMiddleware(secret), middleware.RequireRole("barber"))
	me.GET("/schedule", sched.Get)
	me.PUT("/schedule", sched.Update)
	me.GET("/bookings", bookings.ListAgenda)
	me.PATCH("/bookings/:id/accept", bookings.Accept)
	me.PATCH("/bookings/:id/reject", bookings.Reject)
	me.PATCH("/bookings/:id/cancel", bookings.CancelAsBarber)
	me.PATCH("/bookings/:id/complete", bookings.Complete)
	me.PATCH("/bookings/:id/no-show", bookings.NoShow)

	return &testServer{router: r, store: store}
}

func customerToken(t *testing.T, id uint) string {
	t.Helper()
	tok, err := middleware.IssueToken(secret, id, nil, "customer", time.Now())
	require.NoError(t, err)
	return tok
}

func barberToken(t *testing.T) string {
	t.Helper()
	shop := shopID
	tok, err := middleware.IssueToken(secret, barberID, &shop, "barber", time.Now())
	require.NoError(t, err)
	return tok
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) seed(t *testing.T, customer uint, hm string, st domain.Status) string {
	t.Helper()
	id := uuid.NewString()
	require.NoError(t, s.store.CreateBooking(context.Background(), &domain.Booking{
		ID: id, CustomerID: customer, BarberID: barberID, ServiceID: serviceID,
		Date: bookingDay, Time: hm, Status: st,
	}))
	return id
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
