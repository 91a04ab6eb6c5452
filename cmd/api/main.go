package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/infra/archive"
	"github.com/BruksfildServices01/barber-booking/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/infra/snapshot"
	"github.com/BruksfildServices01/barber-booking/internal/jobs"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
	ucSchedule "github.com/BruksfildServices01/barber-booking/internal/usecase/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("info", false)
		boot.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogPretty)
	timezone.SetDefault(cfg.DefaultTimezone)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database unavailable")
	}

	// ======================================================
	// INFRA
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	directory := infraRepo.NewDirectoryGormRepository(db)
	schedules := scheduleStore(cfg, infraRepo.NewScheduleGormRepository(db), log)

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)
	m := metrics.New(prometheus.DefaultRegisterer)

	deps := ucBooking.Deps{
		Bookings:           bookingRepo,
		Snapshot:           snapshot.NewBookings(bookingRepo, cfg.SnapshotTTL),
		Schedules:          schedules,
		Directory:          directory,
		Clock:              timezone.SystemClock{},
		CancellationNotice: cfg.CancellationNotice,
		DefaultInterval:    cfg.DefaultSlotInterval,
		Audit:              auditDispatcher,
		Metrics:            m,
		Logger:             log,
	}

	// ======================================================
	// JOBS
	// ======================================================
	scheduler := jobs.NewScheduler(log)
	if err := scheduler.AddExpirePending(cfg.ExpirePendingCron, ucBooking.NewExpireStalePending(deps)); err != nil {
		log.Fatal().Err(err).Msg("invalid job schedule")
	}
	scheduler.Start()

	// ======================================================
	// HTTP
	// ======================================================
	if !cfg.LogPretty {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := validators.Register(); err != nil {
		log.Fatal().Err(err).Msg("failed to register validators")
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Infra{
		DB:        db,
		Config:    cfg,
		Booking:   deps,
		Schedules: schedules,
		Archiver:  scheduleArchiver(cfg),
		Metrics:   m,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	scheduler.Stop(ctx)
	auditDispatcher.Close()
}

// scheduleStore puts the redis cache in front of the database when
// REDIS_ADDR is set.
func scheduleStore(cfg *config.Config, store schedule.Store, log zerolog.Logger) schedule.Store {
	if cfg.RedisAddr == "" {
		return store
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, schedule cache will fall through")
	}

	return cache.NewScheduleCache(store, rdb, cfg.ScheduleCacheTTL, log)
}

// scheduleArchiver returns a nil interface when no bucket is configured.
func scheduleArchiver(cfg *config.Config) ucSchedule.Archiver {
	if cfg.S3Bucket == "" {
		return nil
	}

	client := archive.NewS3Client(archive.S3Config{
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})
	return archive.NewScheduleArchiver(client, cfg.S3Bucket)
}
