package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/1970jjh/alpagoteam/internal/httpserver"
	"github.com/1970jjh/alpagoteam/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	timeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "10s"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid REQUEST_TIMEOUT")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, httpserver.Config{
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		Timeout:      timeout,
	})
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting alpagoteam")
	if err := srv.Run(ctx, ":"+port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
