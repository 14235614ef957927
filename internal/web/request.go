package web

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const correlationIdHeader = "x-correlation-id"

// CurrentTimeFunc Current time. Can be mocked for testing.
var CurrentTimeFunc = time.Now

func StartRequest(c *gin.Context) {
	c.Set("requestStartTime", CurrentTimeFunc())
}

// CorrelationId takes the correlation id from the request header or creates
// one, and echoes it back to the caller.
func CorrelationId(c *gin.Context) {
	correlationId := c.GetHeader(correlationIdHeader)
	if correlationId == "" {
		correlationId = uuid.New().String()
	}

	c.Set("correlationId", correlationId)
	c.Header(correlationIdHeader, correlationId)
}

func RegisterLogger(logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestLogger := logger.
			With().
			Str("correlationId", c.MustGet("correlationId").(string)).
			Logger()

		c.Set("logger", &requestLogger)
	}
}

func TraceLog(c *gin.Context) {
	// Finish all others and then write trace log
	c.Next()

	logger := c.MustGet("logger").(*zerolog.Logger)
	startTime := c.MustGet("requestStartTime").(time.Time)

	logger.Info().
		Str("label", "trace").
		Str("method", c.Request.Method).
		Str("url", c.Request.URL.Path).
		Str("route", c.FullPath()).
		Int("code", c.Writer.Status()).
		Int("size", c.Writer.Size()).
		Float64("duration", CurrentTimeFunc().Sub(startTime).Seconds()).
		Msg("")
}
