package interfaces

import (
	"context"

	"bitbucket.org/crgw/booking-quotes/internal/booking/orchestrator"
	"github.com/rs/zerolog"
)

type WithQuotes interface {
	Process(context.Context, []byte, *zerolog.Logger) (orchestrator.Response, error)
}
