package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/storefront-pager/internal/config"
	"github.com/maxviazov/storefront-pager/internal/handler"
	"github.com/maxviazov/storefront-pager/internal/logger"
	"github.com/maxviazov/storefront-pager/internal/repository"
	"github.com/maxviazov/storefront-pager/internal/repository/cache"
	"github.com/maxviazov/storefront-pager/internal/repository/memory"
	"github.com/maxviazov/storefront-pager/internal/repository/postgres"
	"github.com/maxviazov/storefront-pager/internal/service"
)

const demoProductCount = 240

func main() {
	// Load application config
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Fatal().Err(err).Msg("❌ Service stopped with error")
	}
	appLogger.Info().Msg("👋 Service stopped")
}

// storage is what the selected driver provides to the service layer.
type storage struct {
	products repository.ProductRepository
	tx       repository.TxManager
	checks   []handler.Check
	close    func()
}

func openStorage(ctx context.Context, cfg *config.Config, appLogger zerolog.Logger) (*storage, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		repo, err := repository.New(ctx, cfg, &appLogger)
		if err != nil {
			return nil, fmt.Errorf("postgres connection failed: %w", err)
		}
		return &storage{
			products: postgres.NewProductRepository(repo.Pool()),
			tx:       postgres.NewTxManager(repo.Pool()),
			checks:   []handler.Check{{Name: "postgres", Pinger: postgres.NewPinger(repo.Pool())}},
			close:    repo.Close,
		}, nil
	default:
		mem := memory.NewProductRepository()
		if cfg.Storage.SeedDemo {
			n, err := repository.SeedDemo(ctx, mem, demoProductCount, time.Now().UTC())
			if err != nil {
				return nil, err
			}
			appLogger.Info().Int("products", n).Msg("Demo catalog seeded")
		}
		return &storage{
			products: mem,
			tx:       mem,
			checks:   []handler.Check{{Name: "memory", Pinger: mem}},
			close:    func() {},
		}, nil
	}
}

func run(ctx context.Context, cfg *config.Config, appLogger zerolog.Logger) error {
	st, err := openStorage(ctx, cfg, appLogger)
	if err != nil {
		return err
	}
	defer st.close()
	appLogger.Info().Str("driver", cfg.Storage.Driver).Msg("✅ Storage ready")

	products := st.products
	if cfg.Redis.Enabled {
		client, err := cache.Connect(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis connection failed: %w", err)
		}
		defer func() { _ = client.Close() }()
		ttl := time.Duration(cfg.Redis.CountTTL) * time.Second
		products = cache.NewCountCache(products, client, ttl, appLogger)
		st.checks = append(st.checks, handler.Check{Name: "redis", Pinger: cache.NewPinger(client)})
		appLogger.Info().Dur("count_ttl", ttl).Msg("✅ Count cache enabled")
	}

	limits := service.Limits{DefaultPageSize: cfg.Pager.DefaultPageSize, MaxPageSize: cfg.Pager.MaxPageSize}

	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	handler.Register(engine, handler.Deps{
		Pager:   service.NewPagerService(limits, appLogger),
		Catalog: service.NewCatalogService(products, st.tx, limits, appLogger),
		Checks:  st.checks,
		Logger:  appLogger,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info().Str("addr", srv.Addr).Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	timeout := time.Duration(cfg.App.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	appLogger.Info().Msg("Shutting down")
	return srv.Shutdown(shutdownCtx)
}
