package errors

import "errors"

var (
	ErrDocumentTooLarge    = errors.New("request document too large")
	ErrUnreadableDocument  = errors.New("request document could not be read")
	ErrMissingQuoteService = errors.New("quote service not configured")
)
