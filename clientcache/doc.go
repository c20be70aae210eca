// Package clientcache caches authenticated HTTP clients keyed by API key,
// refreshing them on demand when their access tokens expire.
//
// Authenticating is slow and constructing an HTTP client is expensive, so
// neither should happen on every call. The cache pays both costs once per
// token lifetime: a lookup within the token's validity window returns the
// already-built client, a lookup after expiry re-authenticates and replaces
// the entry. Callers never receive a client whose token has expired.
//
// # Features
//
//   - GetOrRefresh: cache hit while the token is fresh, transparent
//     re-authentication once it is not
//   - Pluggable authentication (authclient.Authenticator) and client
//     construction (BuildClientFunc)
//   - Default headers on every request: "Authorization: Bearer <token>" and
//     "X-Api-Key: <key>"
//   - Concurrent refreshes of the same key coalesce into one authentication
//     call; WithPerKeyRefresh additionally keeps unrelated keys from blocking
//     each other
//   - Optional LRU capacity bound (WithMaxEntries), expiry leeway, logging
//   - gRPC unary and stream client interceptors fed from the same cache
//
// # Quick Start
//
//	auth := authclient.NewHTTPAuthenticator("https://auth.example.com/token")
//	cache := clientcache.New(auth, clientcache.WithLoggingEnabled())
//
//	client, err := cache.GetOrRefresh(ctx, apiKey, apiSecret)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := client.Get("https://api.example.com/v1/things")
//
// # Notes
//
//   - The secret is used transiently during refresh and never stored.
//   - Errors are classified with errors.Is against ErrAuthenticationFailed,
//     ErrInvalidCredentialEncoding and ErrClientConstruction; a failed refresh
//     never disturbs the previously cached entry.
//   - By default one lock serializes all refreshes, trading cross-key
//     blocking for simplicity; see WithPerKeyRefresh.
package clientcache
