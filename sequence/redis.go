package sequence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

const (
	seedLockTTL   = 10 * time.Second
	seedLockRetry = 50 * time.Millisecond
	seedLockTries = 40
)

// RedisCounter keeps counters as plain INCR keys. A missing key is seeded
// from the table under a distributed lock so that concurrent processes
// seed it once. The counter is not part of the SQL transaction: a failed
// insert leaves a gap but never a duplicate.
type RedisCounter struct {
	Client    redis.Cmdable
	Locker    *redislock.Client
	KeyPrefix string
}

func NewRedisCounter(client redis.Cmdable, locker *redislock.Client) *RedisCounter {
	return &RedisCounter{Client: client, Locker: locker, KeyPrefix: "idseq:"}
}

func (c *RedisCounter) key(ns Namespace) string {
	return c.KeyPrefix + ns.Key()
}

func (c *RedisCounter) Next(ctx context.Context, q Querier, ns Namespace) (int64, error) {
	key := c.key(ns)
	exists, err := c.Client.Exists(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("sequence %s: check counter: %w", ns.Key(), err)
	}
	if exists == 0 {
		if err := c.seed(ctx, q, ns, key); err != nil {
			return 0, err
		}
	}
	value, err := c.Client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("sequence %s: increment counter: %w", ns.Key(), err)
	}
	return value, nil
}

func (c *RedisCounter) seed(ctx context.Context, q Querier, ns Namespace, key string) error {
	lock, err := c.Locker.Obtain(ctx, key+":seed", seedLockTTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(seedLockRetry), seedLockTries),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return fmt.Errorf("sequence %s: seed lock busy: %w", ns.Key(), err)
	}
	if err != nil {
		return fmt.Errorf("sequence %s: obtain seed lock: %w", ns.Key(), err)
	}
	defer func() {
		_ = lock.Release(ctx)
	}()

	exists, err := c.Client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("sequence %s: check counter: %w", ns.Key(), err)
	}
	if exists == 1 {
		return nil
	}
	highest, err := MaxSuffix(ctx, q, ns)
	if err != nil {
		return err
	}
	if err := c.Client.SetNX(ctx, key, highest, 0).Err(); err != nil {
		return fmt.Errorf("sequence %s: seed counter: %w", ns.Key(), err)
	}
	return nil
}

// Reset drops the cached counter so the next call reseeds from the table.
func (c *RedisCounter) Reset(ctx context.Context, ns Namespace) error {
	return c.Client.Del(ctx, c.key(ns)).Err()
}
