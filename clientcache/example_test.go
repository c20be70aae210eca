package clientcache_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Dzejkop/worldcoin-code-challenge/authclient"
	"github.com/Dzejkop/worldcoin-code-challenge/clientcache"
)

// Example demonstrates the basic cache flow: the first call authenticates and
// builds a client, subsequent calls reuse it until the token expires.
func Example() {
	auth := authclient.Func(func(ctx context.Context, id authclient.Identity, apiKey, apiSecret string) (authclient.Output, error) {
		// A real deployment would call the authentication service here.
		return authclient.Output{
			AccessToken: fmt.Sprintf("%s:%s:%s", id.ClientID, id.PoolID, apiKey),
			ExpiresIn:   3600,
		}, nil
	})

	cache := clientcache.New(auth)

	client, err := cache.GetOrRefresh(context.Background(), "my-api-key", "my-api-secret")
	if err != nil {
		log.Fatal(err)
	}

	// Every request made with the client carries the bearer token and the
	// X-Api-Key header.
	_ = client

	fmt.Println("client ready")
	// Output: client ready
}

// ExampleNew_options shows a production-leaning configuration: a real token
// endpoint, bounded capacity, per-key refresh and refresh logging.
func ExampleNew_options() {
	auth := authclient.NewHTTPAuthenticator("https://auth.example.com/token")

	cache := clientcache.New(auth,
		clientcache.WithIdentity(authclient.Identity{
			ClientID: "my-client-id",
			PoolID:   "my-pool-id",
		}),
		clientcache.WithMaxEntries(1024),
		clientcache.WithPerKeyRefresh(),
		clientcache.WithExpiryLeeway(30*time.Second),
		clientcache.WithLoggingEnabled(),
	)

	_ = cache
}

// ExampleCache_Token fetches a bare token, e.g. to attach to a protocol the
// cached HTTP client does not cover.
func ExampleCache_Token() {
	auth := authclient.Func(func(context.Context, authclient.Identity, string, string) (authclient.Output, error) {
		return authclient.Output{AccessToken: "tok", ExpiresIn: 60}, nil
	})
	cache := clientcache.New(auth)

	token, err := cache.Token(context.Background(), "my-api-key", "my-api-secret")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token)
	// Output: tok
}
