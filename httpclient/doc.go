// Package httpclient builds reusable HTTP clients carrying fixed default
// headers, with optional TLS/mTLS configuration.
//
// It is the client-factory half of the client cache: given a set of default
// headers (typically an Authorization bearer value and an API key header), it
// produces an *http.Client whose transport applies those headers to every
// request. Constructing the client is the expensive part; the resulting client
// is safe to share and copy, since copies share the underlying transport and
// its connection pool.
//
// # Features
//
//   - Fluent Builder with default headers, timeouts, custom base transports
//   - HeaderTransport RoundTripper that injects defaults without clobbering
//     per-request overrides
//   - Header name/value validation (ErrInvalidHeaderValue)
//   - TLS with custom CA, mTLS client certificates, secure defaults (TLS 1.2+)
//
// # Quick Start
//
//	headers := http.Header{}
//	headers.Set("Authorization", "Bearer "+token)
//	headers.Set("X-Api-Key", apiKey)
//
//	client, err := httpclient.NewBuilder().
//	    WithDefaultHeaders(headers).
//	    WithTimeout(10 * time.Second).
//	    Build()
package httpclient
