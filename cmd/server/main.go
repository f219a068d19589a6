package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/actuallystonmai/nutriguide-service/internal/cache"
	"github.com/actuallystonmai/nutriguide-service/internal/classifier"
	"github.com/actuallystonmai/nutriguide-service/internal/config"
	"github.com/actuallystonmai/nutriguide-service/internal/domain"
	"github.com/actuallystonmai/nutriguide-service/internal/handler"
	"github.com/actuallystonmai/nutriguide-service/internal/logger"
	"github.com/actuallystonmai/nutriguide-service/internal/metrics"
	"github.com/actuallystonmai/nutriguide-service/internal/repository"
	"github.com/actuallystonmai/nutriguide-service/internal/router"
	"github.com/actuallystonmai/nutriguide-service/internal/service"
	"github.com/actuallystonmai/nutriguide-service/internal/session"
	"github.com/actuallystonmai/nutriguide-service/seeds"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ------------ PostgreSQL ---------------
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to parse database config", zap.Error(err))
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := waitForDB(ctx, pool, log); err != nil {
		log.Fatal("database not ready", zap.Error(err))
	}
	log.Info("connected to PostgreSQL")

	// ------------ Run Migrations ---------------
	// for migrate-down using CLI command
	if len(os.Args) > 1 && os.Args[1] == "migrate-down" {
		if err := runMigration(ctx, pool, "migrations/create_tables.down.sql"); err != nil {
			log.Fatal("failed to migrate down", zap.Error(err))
		}
		log.Info("migrations dropped")
		return
	}

	if err := runMigration(ctx, pool, "migrations/create_tables.up.sql"); err != nil {
		log.Fatal("failed to migrate up", zap.Error(err))
	}
	log.Info("migrations applied")

	repo := repository.New(pool)

	// ------------ Redis ---------------
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatal("failed to parse redis url", zap.Error(err))
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()
	resultCache := cache.NewCache(rdb, cfg.CacheTTL)

	// ------------ Setup Seed Data ---------------
	seeded, err := checkSeed(ctx, pool, repo, cfg.SeedOnStart, log)
	if err != nil {
		log.Fatal("failed to check seed", zap.Error(err))
	}
	if seeded {
		// cached rankings were computed from the previous data
		if err := resultCache.Flush(ctx); err != nil {
			log.Warn("failed to flush recommendation cache", zap.Error(err))
		}
	}

	// ------------ Reference data ---------------
	data, err := service.LoadReferenceData(ctx, repo, log)
	if err != nil {
		if domain.IsLoadFailure(err) {
			log.Fatal("failed to load reference data", zap.Error(err))
		}
		log.Fatal("unexpected startup error", zap.Error(err))
	}

	// ------------ Service ---------------
	sessions := session.NewStore(cfg.SessionTTL, cfg.PageSize)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc := service.NewService(data, service.Deps{
		Nutrition:  repo,
		Cache:      resultCache,
		Classifier: classifier.NewClient(cfg.ClassifierURL, cfg.ClassifierTimeout, log),
		Sessions:   sessions,
		Metrics:    metrics.New(reg, sessions.Len),
		Logger:     log,
	}, service.Options{
		Limit:            cfg.RecommendationLimit,
		BatchConcurrency: cfg.BatchConcurrency,
	})

	h := handler.NewHandler(svc, log, handler.Options{
		MaxUploadBytes: cfg.MaxUploadBytes,
		Checks: []handler.ReadinessCheck{
			{Name: "postgres", Ping: repo.Ping},
			{Name: "redis", Ping: resultCache.Ping},
		},
	})

	// ---------------- Server --------------------
	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.Setup(h, router.Options{
			Logger:             log,
			AllowedOrigins:     cfg.CORSAllowedOrigins,
			RateLimitPerMinute: cfg.RateLimitPerMinute,
			Gatherer:           reg,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		log.Fatal("server failed", zap.Error(err))
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool, log *zap.Logger) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		log.Info("waiting for database", zap.Int("attempt", i+1), zap.Int("max", 30))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(1 * time.Second):
		}
	}
	return fmt.Errorf("database connection timeout after 30s")
}

func runMigration(ctx context.Context, pool *pgxpool.Pool, path string) error {
	sql, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	return nil
}

// checkSeed loads the bundled dataset into an empty database. It reports
// whether seeding ran.
func checkSeed(ctx context.Context, pool *pgxpool.Pool, repo *repository.Repository, enabled bool, log *zap.Logger) (bool, error) {
	count, err := repo.CountFoodItems(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		log.Info("database already seeded, skipping", zap.Int("food_items", count))
		return false, nil
	}
	if !enabled {
		log.Warn("database is empty and SEED_ON_START is off")
		return false, nil
	}
	return true, seeds.Setup(ctx, pool, log)
}
