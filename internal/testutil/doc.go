// Package testutil provides test helpers for the client cache packages.
//
// It includes utilities to spin up IPv4-only local HTTP servers (avoiding IPv6
// in sandboxes), mock token endpoints without real sockets, and generate
// self-signed certificates for TLS/mTLS tests.
//
// # Utilities
//
//   - NewLocalHTTPServer: start httptest server bound to 127.0.0.1
//   - MockAuthServer with TokenResponse / ErrorResponse / StaticJSONResponse:
//     stub token endpoints and capture requests
//   - RoundTripFunc: inline http.RoundTripper implementations
//   - WriteTestCACert / WriteTestCertAndKey: generate temporary CA and leaf
//     certificates for tests
package testutil
