package web

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"bitbucket.org/crgw/booking-quotes/internal/config"
	"bitbucket.org/crgw/booking-quotes/internal/obs"
	"bitbucket.org/crgw/booking-quotes/internal/platform"
	platformErrors "bitbucket.org/crgw/booking-quotes/internal/platform/errors"
	"bitbucket.org/crgw/booking-quotes/internal/platform/interfaces"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Config  config.Config
	Quotes  interfaces.WithQuotes
	Metrics *obs.Metrics
}

func SetupRouter(log *zerolog.Logger, deps Dependencies) (*gin.Engine, error) {
	startTime := time.Now()

	if deps.Quotes == nil {
		return nil, platformErrors.ErrMissingQuoteService
	}

	openApiContent, err := os.ReadFile(deps.Config.OpenapiLocation)
	if err != nil {
		return nil, fmt.Errorf("reading openapi document: %w", err)
	}

	openapiValidator, err := OpenapiValidator(openApiContent)
	if err != nil {
		return nil, fmt.Errorf("loading openapi document: %w", err)
	}

	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.
		Use(StartRequest).
		Use(CorrelationId).
		Use(RegisterLogger(log)).
		Use(TraceLog).
		Use(PanicRecovery)

	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware)
	}

	if len(deps.Config.CORSAllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  deps.Config.CORSAllowedOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length", correlationIdHeader},
			ExposeHeaders: []string{"Content-Length", correlationIdHeader},
			MaxAge:        12 * time.Hour,
		}))
	}

	router.Use(openapiValidator)

	router.GET("/status", func(c *gin.Context) {
		response := struct {
			Uptime float64 `json:"uptime"`
		}{
			Uptime: time.Since(startTime).Seconds(),
		}

		c.JSON(http.StatusOK, response)
	})

	router.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", openApiContent)
	})

	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	pprof.Register(router)

	platform.RegisterRoutes(router, deps.Quotes)

	return router, nil
}
