package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"emerald-ads/internal/adapter/backend"
	httpadapter "emerald-ads/internal/adapter/http"
	"emerald-ads/internal/adapter/postgres"
	redisadapter "emerald-ads/internal/adapter/redis"
	"emerald-ads/internal/adapter/usecase"
	"emerald-ads/internal/config"
	"emerald-ads/internal/core/port"
	"emerald-ads/internal/db"
)

// main is the entry point of the campaign form service. It loads
// configuration, connects the session store, the campaign backend and the
// optional reservation journal, then serves the form API until a
// termination signal arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var journal port.ReservationJournal
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		journal = postgres.NewReservationJournal(pool)
	} else {
		logger.Warn("reservation journal disabled; orphaned deductions will only be logged")
	}

	rdb := redisadapter.NewClient(cfg.Redis)
	defer rdb.Close()
	if err = rdb.Ping(ctx).Err(); err != nil {
		logger.Error("redis connection error", slog.Any("error", err))
		return
	}
	sessions := redisadapter.NewSessionStore(rdb, cfg.Redis)

	client := backend.NewClient(cfg.Backend, logger)
	svc := usecase.NewFormService(client, sessions, journal, logger, usecase.Config{
		QuietPeriod: cfg.Form.QuietPeriod,
		IdleTTL:     cfg.Form.IdleTTL,
	})

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("backend", cfg.Backend.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
		}
		svc.CloseAll()
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
	svc.CloseAll()
}
