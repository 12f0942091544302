package cache

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-pcg/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const lockSuffix = ":gen_lock"

// RedisLevelCache stores encoded levels in Redis with a TTL.
type RedisLevelCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisLevelCache initializes a RedisLevelCache with the provided Redis client and TTL.
func NewRedisLevelCache(client *redis.Client, ttlSeconds int) (i.LevelCache, error) {
	cache := &RedisLevelCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Fetch returns the level cached under key. On a miss it takes a distributed
// lock for the key so that only one caller builds and stores the level.
func (c *RedisLevelCache) Fetch(ctx context.Context, key string, build func() ([]byte, error)) ([]byte, error) {
	if b, err := c.get(ctx, key); b != nil || err != nil {
		return b, err
	}

	mutex := c.locker.NewMutex(key + lockSuffix)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	// Another holder of the lock may have stored it meanwhile.
	if b, err := c.get(ctx, key); b != nil || err != nil {
		return b, err
	}

	b, err := build()
	if err != nil {
		return nil, err
	}
	return b, c.client.Set(ctx, key, b, c.ttl).Err()
}

// get returns nil without error on a miss.
func (c *RedisLevelCache) get(ctx context.Context, key string) ([]byte, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return b, err
}
