package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
	ucSchedule "github.com/BruksfildServices01/barber-booking/internal/usecase/schedule"
)

// Infra carries the singletons built in main.
type Infra struct {
	DB        *gorm.DB
	Config    *config.Config
	Booking   ucBooking.Deps
	Schedules schedule.Store
	Archiver  ucSchedule.Archiver
	Metrics   *metrics.Metrics
}

func RegisterRoutes(r *gin.Engine, in Infra) {
	cfg := in.Config

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.CORSMiddleware(),
		middleware.RequestLogger(in.Booking.Logger),
		middleware.Metrics(in.Metrics),
	)

	limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  rate.Limit(cfg.RateLimitRPS),
		Burst: cfg.RateLimitBurst,
	})

	// ======================================================
	// USE CASES
	// ======================================================
	bookingUC := handlers.NewBookingUseCases(in.Booking)

	getScheduleUC := ucSchedule.NewGetSchedule(in.Schedules)
	saveScheduleUC := ucSchedule.NewSaveSchedule(
		in.Schedules,
		in.Archiver,
		in.Booking.Audit,
		in.Booking.Clock,
		in.Booking.Logger,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(in.DB, cfg.JWTSecret)
	meHandler := handlers.NewMeHandler(in.DB)
	barbershopHandler := handlers.NewBarbershopHandler(in.DB)
	serviceHandler := handlers.NewServiceHandler(in.DB)
	customerHandler := handlers.NewCustomerHandler(in.DB)
	scheduleHandler := handlers.NewScheduleHandler(getScheduleUC, saveScheduleUC)
	bookingHandler := handlers.NewBookingHandler(bookingUC)
	publicHandler := handlers.NewPublicHandler(in.DB, bookingUC.Availability)
	auditLogsHandler := handlers.NewAuditLogsHandler(in.DB)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET(
				"/barbers/:barberId/availability",
				middleware.OptionalAuth(cfg.JWTSecret),
				publicHandler.Availability,
			)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/register-customer", authHandler.RegisterCustomer)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// CUSTOMER
		// ------------------------------
		customer := api.Group("/bookings")
		customer.Use(
			middleware.AuthMiddleware(cfg.JWTSecret),
			middleware.RequireRole("customer"),
		)
		{
			customer.POST("", limiter.RateLimit(), bookingHandler.Create)
			customer.GET("", bookingHandler.ListMine)
			customer.PATCH("/:id/cancel", bookingHandler.CancelMine)
		}

		// ------------------------------
		// BARBER
		// ------------------------------
		me := api.Group("/me")
		me.Use(
			middleware.AuthMiddleware(cfg.JWTSecret),
			middleware.RequireRole("barber"),
		)
		{
			me.GET("", meHandler.GetMe)
			me.PATCH("", meHandler.UpdateMe)

			me.GET("/barbershop", barbershopHandler.GetMeBarbershop)
			me.PATCH("/barbershop", barbershopHandler.UpdateMeBarbershop)

			me.GET("/schedule", scheduleHandler.Get)
			me.PUT("/schedule", scheduleHandler.Update)

			me.GET("/services", serviceHandler.List)
			me.POST("/services", serviceHandler.Create)
			me.PATCH("/services/:id", serviceHandler.Update)

			me.GET("/customers", customerHandler.List)

			me.GET("/bookings", bookingHandler.ListAgenda)
			me.PATCH("/bookings/:id/accept", bookingHandler.Accept)
			me.PATCH("/bookings/:id/reject", bookingHandler.Reject)
			me.PATCH("/bookings/:id/cancel", bookingHandler.CancelAsBarber)
			me.PATCH("/bookings/:id/complete", bookingHandler.Complete)
			me.PATCH("/bookings/:id/no-show", bookingHandler.NoShow)

			me.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
