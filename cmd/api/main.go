package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/planventure/planventure-api/internal/api"
	"github.com/planventure/planventure-api/internal/infrastructure/config"
	"github.com/planventure/planventure-api/internal/infrastructure/db/postgres"
	"github.com/planventure/planventure-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.New("info", "production")
		fallback.Fatal().Err(err).Msg("loading configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.Env)

	pool, err := postgres.Connect(ctx, postgres.Config{
		URL:     cfg.Database.URL,
		Timeout: cfg.Database.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to postgres")
	}
	defer pool.Close()

	e := api.NewRouter(api.Deps{
		Users:       postgres.NewUserRepository(pool),
		Trips:       postgres.NewTripRepository(pool),
		DB:          pool,
		JWTSecret:   cfg.JWTSecret,
		TokenTTL:    cfg.JWTTTL,
		BcryptCost:  cfg.BcryptCost,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      log,
		Metrics:     true,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
