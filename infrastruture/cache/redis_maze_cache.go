package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL      = 10 * time.Minute
	buildLockSuffix = ":build_lock"
	unlockTimeout   = 2 * time.Second
)

// RedisMazeCache keeps encoded maze layouts in Redis with a TTL.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
	logger i.Logger
}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client and TTL.
func NewRedisMazeCache(client *redis.Client, ttlSeconds int, logger i.Logger) (i.MazeCache, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	ttl := time.Duration(ttlSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultTTL
	}

	cache := &RedisMazeCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// GetOrBuild implements i.MazeCache. The build runs under a distributed
// lock so that identical requests on different instances generate once.
func (c *RedisMazeCache) GetOrBuild(ctx context.Context, key string, build func() ([]byte, error)) ([]byte, error) {
	if payload, hit, err := c.get(ctx, key); err != nil || hit {
		return payload, err
	}

	mutex := c.locker.NewMutex(key + buildLockSuffix)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("obtaining build lock for %s: %w", key, err)
	}
	defer func() {
		// Released even when the request context is already done.
		unlockCtx, cancel := context.WithTimeout(context.Background(), unlockTimeout)
		defer cancel()
		if _, err := mutex.UnlockContext(unlockCtx); err != nil && c.logger != nil {
			c.logger.Warning(fmt.Sprintf("Releasing build lock for %s: %s", key, err))
		}
	}()

	// Another holder may have filled the key while we waited.
	if payload, hit, err := c.get(ctx, key); err != nil || hit {
		return payload, err
	}

	payload, err := build()
	if err != nil {
		return nil, err
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return nil, err
	}
	if c.logger != nil {
		c.logger.Info(fmt.Sprintf("Layout cached: key=%s size=%d ttl=%s", key, len(payload), c.ttl))
	}
	return payload, nil
}

func (c *RedisMazeCache) get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}
