package cache

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/maxviazov/storefront-pager/internal/config"
	"github.com/maxviazov/storefront-pager/internal/repository"
)

const connectTimeout = 5 * time.Second

// Connect opens a redis client and pings it once.
func Connect(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("redis host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid redis port %d", cfg.Port)
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

type pinger struct{ client *goredis.Client }

// NewPinger adapts a redis client to repository.Pinger.
func NewPinger(client *goredis.Client) repository.Pinger {
	return &pinger{client: client}
}

func (p *pinger) Ping(ctx context.Context) error { return p.client.Ping(ctx).Err() }
