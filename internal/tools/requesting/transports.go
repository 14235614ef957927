package requesting

import (
	"net/http"
	"time"
)

const maxIdleConnsPerHost = 4

// NewTransport returns a copy of the default transport whose handshake and
// response header waits are bounded by timeout.
func NewTransport(timeout time.Duration) *http.Transport {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = maxIdleConnsPerHost

	if timeout > 0 {
		transport.TLSHandshakeTimeout = timeout
		transport.ResponseHeaderTimeout = timeout
	}

	return transport
}
