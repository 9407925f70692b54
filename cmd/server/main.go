package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	webAdapter "retail-manager/internal/adapters/web"
	"retail-manager/internal/ai"
	"retail-manager/internal/app"
	"retail-manager/internal/config"
	"retail-manager/internal/db"
	"retail-manager/internal/logger"
	"retail-manager/internal/store"
	"retail-manager/internal/store/memory"
	"retail-manager/internal/store/postgres"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	if err := logger.Setup(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cfg.LogOutput,
	}); err != nil {
		log.Fatal().Err(err).Msg("logger")
	}

	ctx := context.Background()

	var st store.Store
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("database")
		}
		st = postgres.New(pool)
		log.Info().Msg("using postgres store")
	} else {
		st = memory.New(memory.DefaultSeed())
		log.Info().Str("email", memory.DemoEmail).Msg("using seeded in-memory store (demo mode)")
	}
	defer st.Close()

	var agent *ai.Agent
	if cfg.OpenAIAPIKey != "" {
		agent = ai.NewAgent(cfg.OpenAIAPIKey)
	} else {
		log.Warn().Msg("OPENAI_API_KEY is not set, assistant disabled")
	}

	svc := app.NewAppService(st, logger.WithComponent("app"), agent)
	handler := webAdapter.NewHandler(svc, os.Getenv("ALLOWED_ORIGINS"), cfg.JWTSecret)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	<-done
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
