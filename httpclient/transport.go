package httpclient

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/net/http/httpguts"
)

// ErrInvalidHeaderValue indicates a default header name or value contains
// characters that are illegal in an HTTP header field.
var ErrInvalidHeaderValue = errors.New("invalid header value")

// HeaderTransport is an http.RoundTripper that applies a fixed set of default
// headers to every outgoing request.
//
// It wraps an existing transport (typically http.DefaultTransport) and sets
// the headers before each request. Headers already present on a request are
// not overwritten, so callers can still override a default per request.
type HeaderTransport struct {
	// Base is the underlying HTTP transport. If nil, http.DefaultTransport is used.
	Base http.RoundTripper

	// Header holds the default headers. Treated as read-only after construction.
	Header http.Header
}

// NewHeaderTransport creates a HeaderTransport with the given default headers.
// The base transport defaults to http.DefaultTransport if not specified.
// The headers are copied and validated; names or values that cannot appear in
// an HTTP header field return an error wrapping ErrInvalidHeaderValue.
func NewHeaderTransport(headers http.Header, base http.RoundTripper) (*HeaderTransport, error) {
	if base == nil {
		base = http.DefaultTransport
	}

	copied := make(http.Header, len(headers))
	for name, values := range headers {
		if !httpguts.ValidHeaderFieldName(name) {
			return nil, fmt.Errorf("httpclient: header %q: %w", name, ErrInvalidHeaderValue)
		}
		for _, value := range values {
			if !httpguts.ValidHeaderFieldValue(value) {
				return nil, fmt.Errorf("httpclient: header %q: %w", name, ErrInvalidHeaderValue)
			}
			copied.Add(name, value)
		}
	}

	return &HeaderTransport{
		Base:   base,
		Header: copied,
	}, nil
}

// RoundTrip implements http.RoundTripper interface.
// It clones the request to avoid mutating the original, applies the default
// headers that the request does not already set, and delegates to the base
// transport.
func (t *HeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	reqClone := req.Clone(req.Context())

	for name, values := range t.Header {
		if reqClone.Header.Get(name) != "" {
			continue
		}
		for _, value := range values {
			reqClone.Header.Add(name, value)
		}
	}

	// Use base transport or default
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	return base.RoundTrip(reqClone)
}
