package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hhanova/component-cnb-exchange-rates/internals/core/domain"
)

// Cache stores raw daily fixing text keyed by the requested date, so
// repeated component runs over the same range skip the network.
type Cache interface {
	GetDailyFeed(date time.Time) (string, bool)
	SetDailyFeed(date time.Time, raw string)
}

type redisCache struct {
	client  *redis.Client
	feedTTL time.Duration
}

func NewRedisCache(client *redis.Client, feedTTL time.Duration) Cache {
	return &redisCache{
		client:  client,
		feedTTL: feedTTL,
	}
}

func dailyFeedKey(date time.Time) string {
	return fmt.Sprintf("feed:%s", date.Format(domain.DateFormat))
}

func (rc *redisCache) GetDailyFeed(date time.Time) (string, bool) {
	key := dailyFeedKey(date)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	raw, err := rc.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			log.Printf("Cache miss for key %s", key)
			return "", false
		}
		log.Printf("Error getting daily feed from Redis: %v", err)
		return "", false
	}

	log.Printf("Cache hit for key %s", key)
	return raw, true
}

func (rc *redisCache) SetDailyFeed(date time.Time, raw string) {
	lock := NewRedisLock(rc.client, "feed_cache_write_lock", 30*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second) // max wait 10s to acquire lock
	defer cancel()

	acquired, err := lock.Acquire(ctx, 10*time.Second)
	if err != nil {
		log.Printf("Error acquiring lock for SetDailyFeed: %v", err)
		return
	}
	if !acquired {
		log.Println("Could not acquire lock for SetDailyFeed after waiting")
		return
	}
	defer func() {
		if err := lock.Release(context.Background()); err != nil {
			log.Printf("Error releasing lock for SetDailyFeed: %v", err)
		}
	}()

	key := dailyFeedKey(date)
	if err := rc.client.Set(ctx, key, raw, rc.feedTTL).Err(); err != nil {
		log.Printf("Error setting daily feed in Redis: %v", err)
	} else {
		log.Printf("Cached daily feed for %s in Redis with TTL %s", date.Format(domain.DateFormat), rc.feedTTL)
	}
}
