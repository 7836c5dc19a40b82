package main

import (
	"log/slog"
	"net/http"
	"os"

	backoffice "github.com/RafaelMenegalli/pizzaria-frontend"
	"github.com/RafaelMenegalli/pizzaria-frontend/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional outside of development; load it before reading config
	// so an ENVIRONMENT set there takes effect
	envErr := godotenv.Load()

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel(),
	}))
	if envErr != nil {
		logger.Debug("no .env file loaded", "err", envErr)
	}

	app, err := backoffice.New(
		backoffice.WithLogger(logger),
		backoffice.WithConfig(cfg),
	)
	if err != nil {
		logger.Error("starting back-office", "err", err)
		os.Exit(1)
	}

	logger.Info("listening", "addr", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, app.Router()); err != nil {
		logger.Error("http server failed", "err", err)
		os.Exit(1)
	}
}
