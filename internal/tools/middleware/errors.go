package middleware

import (
	"net/http"

	"bitbucket.org/crgw/booking-quotes/internal/schema"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const xmlContentType = "application/xml; charset=utf-8"

// HandleError logs err with the request logger and aborts with a generic
// application errors document.
func HandleError(c *gin.Context, status int, message string, err error) {
	if logger, ok := c.Get("logger"); ok {
		event := logger.(*zerolog.Logger).Error().Int("code", status)
		if err != nil {
			event = event.Err(err)
		}
		event.Msg(message)
	}

	document := schema.NewGenericApplicationErrors(message)
	document.HTTPStatusCode = status

	body, marshalErr := document.Marshal()
	if marshalErr != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Data(status, xmlContentType, body)
	c.Abort()
}
