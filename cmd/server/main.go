package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"authlink/internal/platform/config"
	"authlink/internal/platform/httpserver"
	"authlink/internal/platform/logger"
	httptransport "authlink/internal/transport/http"
	"authlink/internal/users"
	"authlink/pkg/api"
	apimetrics "authlink/pkg/api/metrics"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Protocol logic lives in the SDK packages under pkg.
func main() {
	// A local .env is optional; the environment wins.
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	client, err := api.Default(api.Config{
		BaseURL:          cfg.BaseURL,
		ServiceAPIKey:    cfg.ServiceAPIKey,
		ServiceAPISecret: cfg.ServiceAPISecret,
		Timeout:          cfg.APITimeout,
		Logger:           log,
		Metrics:          apimetrics.New(),
	})
	if err != nil {
		log.Error("remote API client init failed", "error", err)
		os.Exit(1)
	}

	handler := httptransport.NewHandler(client, users.NewDemoStore(), log)
	router := httptransport.NewRouter(handler)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting authlink demo server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
