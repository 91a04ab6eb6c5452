package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
)

// ScheduleCache is a read-through redis cache in front of a schedule store.
// Redis failures degrade to the underlying store.
type ScheduleCache struct {
	next   schedule.Store
	rdb    *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewScheduleCache(next schedule.Store, rdb *redis.Client, ttl time.Duration, logger zerolog.Logger) *ScheduleCache {
	return &ScheduleCache{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.With().Str("component", "schedule_cache").Logger(),
	}
}

func scheduleKey(barberID uint) string {
	return fmt.Sprintf("schedule:%d", barberID)
}

func (c *ScheduleCache) GetSchedule(ctx context.Context, barberID uint) (*schedule.Config, error) {
	key := scheduleKey(barberID)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cfg schedule.Config
		if jsonErr := json.Unmarshal(raw, &cfg); jsonErr == nil {
			return &cfg, nil
		}
		c.logger.Warn().Str("key", key).Msg("discarding unreadable cache entry")
	case !errors.Is(err, redis.Nil):
		c.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}

	cfg, err := c.next.GetSchedule(ctx, barberID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(cfg); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
	}

	return cfg, nil
}

func (c *ScheduleCache) SaveSchedule(ctx context.Context, barberID uint, cfg schedule.Config) error {
	if err := c.next.SaveSchedule(ctx, barberID, cfg); err != nil {
		return err
	}

	if err := c.rdb.Del(ctx, scheduleKey(barberID)).Err(); err != nil {
		c.logger.Warn().Err(err).Uint("barber_id", barberID).Msg("cache invalidation failed")
	}
	return nil
}

var _ schedule.Store = (*ScheduleCache)(nil)
