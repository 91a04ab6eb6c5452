package main

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/infra/archive"
	"github.com/BruksfildServices01/barber-booking/internal/infra/cache"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memory"
)

func TestScheduleArchiver(t *testing.T) {
	// no bucket must yield an untyped nil so the save use case skips archiving
	assert.Nil(t, scheduleArchiver(&config.Config{}))

	got := scheduleArchiver(&config.Config{S3Bucket: "schedules", S3Region: "us-east-1"})
	require.NotNil(t, got)
	assert.IsType(t, &archive.ScheduleArchiver{}, got)
}

func TestScheduleStore(t *testing.T) {
	store := memory.NewScheduleStore()

	plain := scheduleStore(&config.Config{}, store, zerolog.Nop())
	assert.Same(t, store, plain)

	mr := miniredis.RunT(t)
	cached := scheduleStore(&config.Config{RedisAddr: mr.Addr(), ScheduleCacheTTL: time.Minute}, store, zerolog.Nop())
	require.IsType(t, &cache.ScheduleCache{}, cached)

	require.NoError(t, cached.SaveSchedule(context.Background(), 1, schedule.Config{}))
	_, err := cached.GetSchedule(context.Background(), 1)
	assert.NoError(t, err)
}
