// Package cache decorates a ProductRepository with a redis-backed cache of
// listing counts. Paging through a catalog repeats the same COUNT for every
// page, so the count is the one result worth keeping between requests.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/maxviazov/storefront-pager/internal/model"
	"github.com/maxviazov/storefront-pager/internal/repository"
)

const (
	keyPrefix  = "storefront:products:count:"
	DefaultTTL = 30 * time.Second
)

// Store is the slice of redis the cache needs; *goredis.Client satisfies it.
type Store interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Incr(ctx context.Context, key string) *goredis.IntCmd
}

type countingRepository struct {
	repository.ProductRepository
	store Store
	ttl   time.Duration
	log   zerolog.Logger
}

// NewCountCache wraps next. Redis failures never fail a request: the cache
// logs and falls through to next.
func NewCountCache(next repository.ProductRepository, store Store, ttl time.Duration, logger zerolog.Logger) repository.ProductRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	l := logger.With().Str("module", "repository").Str("component", "count_cache").Logger()
	return &countingRepository{ProductRepository: next, store: store, ttl: ttl, log: l}
}

func (c *countingRepository) Count(ctx context.Context, f repository.ProductFilter) (int, error) {
	key, err := c.key(ctx, f)
	if err == nil {
		if v, gerr := c.store.Get(ctx, key).Int(); gerr == nil {
			return v, nil
		} else if !errors.Is(gerr, goredis.Nil) {
			c.log.Warn().Err(gerr).Str("key", key).Msg("count cache read failed")
		}
	}

	n, err := c.ProductRepository.Count(ctx, f)
	if err != nil {
		return 0, err
	}
	if key != "" {
		if serr := c.store.Set(ctx, key, n, c.ttl).Err(); serr != nil {
			c.log.Warn().Err(serr).Str("key", key).Msg("count cache write failed")
		}
	}
	return n, nil
}

// Create bumps the generation counter so every cached count becomes unreachable
// at once; stale keys then expire on their own TTL.
func (c *countingRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	out, err := c.ProductRepository.Create(ctx, p)
	if err != nil {
		return out, err
	}
	if ierr := c.store.Incr(ctx, keyPrefix+"gen").Err(); ierr != nil {
		c.log.Warn().Err(ierr).Msg("count cache invalidation failed")
	}
	return out, nil
}

func (c *countingRepository) key(ctx context.Context, f repository.ProductFilter) (string, error) {
	gen, err := c.store.Get(ctx, keyPrefix+"gen").Int64()
	if err != nil && !errors.Is(err, goredis.Nil) {
		c.log.Warn().Err(err).Msg("count cache generation read failed")
		return "", err
	}
	return fmt.Sprintf("%s%s:%s", keyPrefix, strconv.FormatInt(gen, 10), f.Key()), nil
}
