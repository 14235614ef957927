package platform

import (
	"net/http"

	"bitbucket.org/crgw/booking-quotes/internal/platform/interfaces"
	platformMiddleware "bitbucket.org/crgw/booking-quotes/internal/platform/middleware"
	"bitbucket.org/crgw/booking-quotes/internal/tools/middleware"
	"bitbucket.org/crgw/booking-quotes/internal/tools/slowlog"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func RegisterRoutes(router *gin.Engine, quotes interfaces.WithQuotes) {
	router.POST("/quotes",
		platformMiddleware.TapLogger("quotes"),
		platformMiddleware.PrepareDocument(platformMiddleware.DefaultMaxDocumentSize),
		func(ctx *gin.Context) {
			logger := ctx.MustGet("logger").(*zerolog.Logger)

			slowLog := slowlog.CreateLogger(logger)
			slowLog.Start("quotes")
			defer slowLog.Stop("quotes")

			raw, ok := ctx.MustGet(platformMiddleware.DocumentKey).([]byte)
			if !ok {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Bad request document", nil)
				return
			}

			response, err := quotes.Process(ctx.Request.Context(), raw, logger)
			if err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed generating quotes", err)
				return
			}

			ctx.Data(response.StatusCode, response.ContentType, response.Body)
		},
	)
}
