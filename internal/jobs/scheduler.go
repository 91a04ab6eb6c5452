package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Expirer rejects pending bookings whose time has passed.
type Expirer interface {
	Execute(ctx context.Context) (int, error)
}

type Scheduler struct {
	cron    *cron.Cron
	logger  zerolog.Logger
	timeout time.Duration
}

func NewScheduler(logger zerolog.Logger) *Scheduler {
	logger = logger.With().Str("component", "jobs").Logger()
	cl := cronLogger{logger}

	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(
				cron.SkipIfStillRunning(cl),
				cron.Recover(cl),
			),
		),
		logger:  logger,
		timeout: time.Minute,
	}
}

// AddExpirePending registers the stale pending sweep on spec, a standard
// five field cron expression.
func (s *Scheduler) AddExpirePending(spec string, job Expirer) error {
	if _, err := s.cron.AddFunc(spec, func() { s.runExpire(job) }); err != nil {
		return fmt.Errorf("schedule expire pending %q: %w", spec, err)
	}
	return nil
}

func (s *Scheduler) runExpire(job Expirer) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	n, err := job.Execute(ctx)
	if err != nil {
		s.logger.Error().Err(err).Int("expired", n).Msg("expire pending run failed")
		return
	}
	s.logger.Debug().Int("expired", n).Msg("expire pending run finished")
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info().Int("jobs", len(s.cron.Entries())).Msg("job scheduler started")
}

// Stop waits for running jobs, bounded by ctx.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// cronLogger routes cron's own messages into zerolog.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
