// Package authclient defines the authentication collaborator contract used by
// the client cache, plus ready-made implementations.
//
// An Authenticator exchanges an API key and secret for a short-lived access
// token. The cache treats it as a black box: it calls Authenticate on every
// refresh with the process-wide Identity constants and the caller's credential
// pair, and stores the resulting token until it expires.
//
// # Implementations
//
//   - HTTPAuthenticator: POSTs JSON to a token endpoint and decodes
//     {"access_token", "expires_in"}; can optionally derive the TTL from the
//     JWT exp claim when the endpoint omits expires_in
//   - OAuth2Authenticator: standard OAuth2 client-credentials flow with the
//     API key and secret as client credentials
//   - Func: adapt any function, useful for tests and custom protocols
//
// # Quick Start
//
//	auth := authclient.NewHTTPAuthenticator("https://auth.example.com/token")
//	cache := clientcache.New(auth)
//
//	client, err := cache.GetOrRefresh(ctx, apiKey, apiSecret)
package authclient
