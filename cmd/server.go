//go:build !integration

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bitbucket.org/crgw/booking-quotes/internal/app"
	"bitbucket.org/crgw/booking-quotes/internal/config"
	"bitbucket.org/crgw/booking-quotes/internal/tools/logger"
	"bitbucket.org/crgw/booking-quotes/internal/web"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const startupTimeout = 30 * time.Second

func serverApp(httpServer *http.Server, logger *zerolog.Logger) int {
	shutdown := false
	done := make(chan error, 1)
	stop := make(chan os.Signal, 1)
	go func() {
		logger.
			Info().
			Msg("Listening on address " + httpServer.Addr)
		done <- httpServer.ListenAndServe()
	}()
	go func() {
		// Wait for stop
		<-stop
		shutdown = true
		logger.Info().Msg("Shutting down server...")
		_ = httpServer.Shutdown(context.Background())
	}()

	// Notify stop channel if SIGINT or SIGTERM is received
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	err := <-done
	if err != nil && !shutdown {
		logger.
			Error().
			Err(err).
			Msg("Server failed")
		return 1
	}
	return 0
}

func main() {
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		logger.New(os.Getenv("LOG_LEVEL")).Fatal().Err(err).Msg("Invalid configuration")
	}

	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	application, err := app.New(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Startup failed")
	}
	defer application.Close()

	appRouter, err := web.SetupRouter(log, web.Dependencies{
		Config:  cfg,
		Quotes:  application.Quotes,
		Metrics: application.Metrics,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Router setup failed")
	}

	var host string
	if os.Getenv("TEST") == "true" {
		host = "localhost"
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", host, cfg.Port),
		Handler:           appRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	code := serverApp(httpServer, log)
	_ = application.Close()
	os.Exit(code)
}
