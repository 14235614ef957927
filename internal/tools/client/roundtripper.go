package client

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type Observer interface {
	ObserveOutgoing(destination string, status int, seconds float64)
}

type OutgoingLoggerRoundTripper struct {
	destination string
	logger      *zerolog.Logger
	next        http.RoundTripper
	observer    Observer
}

func NewOutgoingLoggerRoundTripper(
	logger *zerolog.Logger,
	destination string,
	next http.RoundTripper,
	observer Observer,
) *OutgoingLoggerRoundTripper {
	return &OutgoingLoggerRoundTripper{
		destination: destination,
		logger:      logger,
		next:        next,
		observer:    observer,
	}
}

func (r OutgoingLoggerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	startTime := time.Now()
	code := 0

	message := r.logger.Info().
		Str("label", "outgoing-request").
		Str("method", req.Method).
		Str("url", req.URL.Redacted()).
		Str("destination", r.destination).
		Str("userAgent", req.UserAgent())

	defer func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		message.Int("code", code).Float64("duration", duration).Msg("")

		if r.observer != nil {
			r.observer.ObserveOutgoing(r.destination, code, duration)
		}
	}(startTime)

	res, err := r.next.RoundTrip(req)
	if err != nil {
		message.Str("error", err.Error())
		return nil, err
	}

	code = res.StatusCode

	return res, nil
}
