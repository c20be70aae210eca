// Package grpcclient builds gRPC client connections authenticated through the
// client cache.
//
// RPCs carry "authorization: Bearer <token>" metadata, with the token served
// from the cache and refreshed on demand when it expires. Multiple
// connections can share one cache so they also share tokens.
//
// # Quick Start
//
//	cache := clientcache.New(authclient.NewHTTPAuthenticator(tokenURL))
//
//	conn, err := grpcclient.NewBuilder().
//	    WithAddress("server.example.com:9090").
//	    WithCredentials(cache, apiKey, apiSecret).
//	    WithTLS("ca.pem", "", "", "").
//	    Build()
package grpcclient
