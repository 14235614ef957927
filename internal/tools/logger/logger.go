package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates the root logger writing JSON to stderr. Unknown levels fall
// back to info.
func New(level string) *zerolog.Logger {
	return NewWithWriter(level, os.Stderr)
}

func NewWithWriter(level string, writer io.Writer) *zerolog.Logger {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsedLevel = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	log := zerolog.New(writer).
		Level(parsedLevel).
		With().
		Timestamp().
		Logger()

	return &log
}
