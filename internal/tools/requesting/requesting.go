package requesting

import (
	"errors"
	"fmt"
	"net/http"
	"os"
)

var (
	ErrTimeout    = errors.New("request timed out")
	ErrConnection = errors.New("connection failed")
	ErrStatus     = errors.New("unexpected status code")
)

func isValidResponse(code int) bool {
	return code >= 200 && code <= 299
}

// RequestErrors classifies the outcome of client.Do. A non 2xx response is
// closed and reported as ErrStatus.
func RequestErrors(response *http.Response, err error) (*http.Response, error) {
	if err != nil {
		if os.IsTimeout(err) {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, err)
		}

		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	if !isValidResponse(response.StatusCode) {
		response.Body.Close()
		return nil, fmt.Errorf("%w: service returned status code %d", ErrStatus, response.StatusCode)
	}

	return response, nil
}
