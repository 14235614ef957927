package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"bitbucket.org/crgw/booking-quotes/internal/app"
	"bitbucket.org/crgw/booking-quotes/internal/config"
	"bitbucket.org/crgw/booking-quotes/internal/platform/interfaces"
	"bitbucket.org/crgw/booking-quotes/internal/tools/logger"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const timeout = 30 * time.Second

// run writes the quotes or the fault document for input to stdout and
// succeeds either way. Other failures leave stdout empty and are only logged.
func run(ctx context.Context, quotes interfaces.WithQuotes, input io.Reader, stdout io.Writer, log *zerolog.Logger) int {
	raw, err := io.ReadAll(input)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read request document")
		return 1
	}

	response, err := quotes.Process(ctx, raw, log)
	if err != nil {
		log.Error().Err(err).Msg("Failed generating quotes")
		return 1
	}

	_, err = stdout.Write(response.Body)
	if err != nil {
		log.Error().Err(err).Msg("Failed to write response")
		return 1
	}

	return 0
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	return os.Open(path)
}

func main() {
	file := flag.String("file", "-", "request document, - reads stdin")
	flag.Parse()

	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	input, err := openInput(*file)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open request document")
		os.Exit(1)
	}
	defer input.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	application, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("Startup failed")
		os.Exit(1)
	}
	defer application.Close()

	code := run(ctx, application.Quotes, input, os.Stdout, log)

	_ = input.Close()
	_ = application.Close()
	cancel()
	os.Exit(code)
}
