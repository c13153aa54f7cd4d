package prayertimes

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jellydator/ttlcache/v3"
	"github.com/limbo/salatchecker/pkg/cleanup"
	"github.com/limbo/salatchecker/pkg/entity"
	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
	"go.uber.org/zap"
)

// Cache stores looked up timetables. Misses and storage failures both report ok=false.
type Cache interface {
	Get(ctx context.Context, key string) (*entity.PrayerTimes, bool)
	Set(ctx context.Context, key string, times *entity.PrayerTimes, ttl time.Duration)
}

const memoryCacheCapacity = 1024

// MemoryCache is a per-process TTL cache bounded by memoryCacheCapacity entries.
type MemoryCache struct {
	items *ttlcache.Cache[string, entity.PrayerTimes]
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		items: ttlcache.New[string, entity.PrayerTimes](
			ttlcache.WithDisableTouchOnHit[string, entity.PrayerTimes](),
			ttlcache.WithCapacity[string, entity.PrayerTimes](memoryCacheCapacity),
		),
	}
}

func (mc *MemoryCache) Get(_ context.Context, key string) (*entity.PrayerTimes, bool) {
	item := mc.items.Get(key)
	if item == nil {
		return nil, false
	}
	times := item.Value()
	return &times, true
}

func (mc *MemoryCache) Set(_ context.Context, key string, times *entity.PrayerTimes, ttl time.Duration) {
	if times == nil || ttl <= 0 {
		return
	}
	mc.items.Set(key, *times, ttl)
}

// RedisCache shares timetables between instances.
type RedisCache struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewRedisCache(ctx context.Context, addr, password string, logger *zap.Logger) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,

		MaintNotificationsConfig: &maintnotifications.Config{
			Mode: maintnotifications.ModeDisabled,
		},
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, errors.New("redis ping error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    rdb.Close,
	})
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisCache{rdb: rdb, logger: logger}, nil
}

func (rc *RedisCache) Get(ctx context.Context, key string) (*entity.PrayerTimes, bool) {
	raw, err := rc.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			rc.logger.Warn("redis get error", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var times entity.PrayerTimes
	if err = sonic.Unmarshal(raw, &times); err != nil {
		rc.logger.Warn("corrupted cache entry", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &times, true
}

func (rc *RedisCache) Set(ctx context.Context, key string, times *entity.PrayerTimes, ttl time.Duration) {
	raw, err := sonic.Marshal(times)
	if err != nil {
		rc.logger.Warn("marshalling cache entry error", zap.Error(err))
		return
	}
	if err = rc.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		rc.logger.Warn("redis set error", zap.String("key", key), zap.Error(err))
	}
}

func (rc *RedisCache) Ping(ctx context.Context) error {
	return rc.rdb.Ping(ctx).Err()
}
