package slowlog

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultThreshold is the duration above which a phase is logged as a warning.
const DefaultThreshold = 250 * time.Millisecond

type Logger interface {
	Start(name string)
	Stop(name string) time.Duration
}

type slowLogger struct {
	log           *zerolog.Logger
	threshold     time.Duration
	ongoingTimers map[string]time.Time
	sync.Mutex
}

func (s *slowLogger) Start(name string) {
	s.Lock()
	s.ongoingTimers[name] = time.Now()
	s.Unlock()
}

// Stop returns the time passed since the matching Start, zero for timers
// which were never started.
func (s *slowLogger) Stop(name string) time.Duration {
	s.Lock()
	defer s.Unlock()

	start, ok := s.ongoingTimers[name]
	if !ok {
		return 0
	}
	delete(s.ongoingTimers, name)

	duration := time.Since(start)

	event := s.log.Debug()
	if duration > s.threshold {
		event = s.log.Warn()
	}

	event.
		Float64("duration", duration.Seconds()).
		Str("breakpoint_name", name).
		Msg("")

	return duration
}

func CreateLogger(log *zerolog.Logger) *slowLogger {
	return CreateLoggerWithThreshold(log, DefaultThreshold)
}

func CreateLoggerWithThreshold(log *zerolog.Logger, threshold time.Duration) *slowLogger {
	logger := log.With().Str("label", "slowlog").Logger()
	return &slowLogger{
		log:           &logger,
		threshold:     threshold,
		ongoingTimers: make(map[string]time.Time),
	}
}
