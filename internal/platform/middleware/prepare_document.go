package middleware

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	platformErrors "bitbucket.org/crgw/booking-quotes/internal/platform/errors"
	"bitbucket.org/crgw/booking-quotes/internal/tools/middleware"
	"github.com/gin-gonic/gin"
)

const (
	DocumentKey string = "document"

	DefaultMaxDocumentSize int64 = 1 << 20
)

// PrepareDocument reads the raw request body into the context. Empty bodies
// are passed on and answered as malformed documents.
func PrepareDocument(maxBytes int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		body, err := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				middleware.HandleError(ctx, http.StatusRequestEntityTooLarge, "Request document too large", platformErrors.ErrDocumentTooLarge)
				return
			}

			middleware.HandleError(ctx, http.StatusBadRequest, "Failed to read request document", fmt.Errorf("%w: %w", platformErrors.ErrUnreadableDocument, err))
			return
		}

		ctx.Set(DocumentKey, body)
	}
}
