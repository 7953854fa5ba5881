package cache

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisLock guards feed cache writes so that concurrently scheduled
// component runs do not stampede the fixing endpoint.
type RedisLock struct {
	client *redis.Client
	key    string
	value  string
	ttl    time.Duration
}

// NewRedisLock creates a new lock with a unique value and TTL
func NewRedisLock(client *redis.Client, key string, ttl time.Duration) *RedisLock {
	return &RedisLock{
		client: client,
		key:    key,
		value:  uuid.NewString(),
		ttl:    ttl,
	}
}

// Acquire tries to acquire the lock, retrying for up to maxWait.
func (l *RedisLock) Acquire(ctx context.Context, maxWait time.Duration) (bool, error) {
	deadline := time.Now().Add(maxWait)
	for {
		ok, err := l.client.SetNX(ctx, l.key, l.value, l.ttl).Result()
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}

		if time.Now().After(deadline) {
			return false, errors.New("timeout acquiring redis lock")
		}

		time.Sleep(100 * time.Millisecond)
	}
}

// Release releases the lock only if still owned by this instance.
func (l *RedisLock) Release(ctx context.Context) error {
	luaScript := `
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
	`
	res, err := l.client.Eval(ctx, luaScript, []string{l.key}, l.value).Result()
	if err != nil {
		return err
	}
	if res.(int64) == 0 {
		log.Println("Lock not released: it was owned by someone else or expired")
	}
	return nil
}
