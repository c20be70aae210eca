package clientcache

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"golang.org/x/net/http/httpguts"
	"golang.org/x/sync/singleflight"
	"k8s.io/utils/clock"

	"github.com/Dzejkop/worldcoin-code-challenge/authclient"
	"github.com/Dzejkop/worldcoin-code-challenge/httpclient"
)

// HeaderAPIKey is the request header carrying the caller's API key.
const HeaderAPIKey = "X-Api-Key"

// Logger is an interface for optional logging in Cache.
// Implementations can log client refresh events if desired.
type Logger interface {
	Printf(format string, args ...any)
}

// BuildClientFunc constructs a reusable HTTP client carrying the given
// default headers on every request. Building a client is assumed to be
// expensive; the cache calls it only on refresh.
type BuildClientFunc func(defaultHeaders http.Header) (*http.Client, error)

// Cache is a keyed store of authenticated HTTP clients, each valid until its
// access token expires.
//
// GetOrRefresh serves a cached client while its token is fresh and
// transparently re-authenticates once it is not, so callers never pay the
// authentication handshake or client construction cost for a key whose token
// is still valid, and never receive a client carrying an expired token.
//
// A Cache must be created with New. It is safe for concurrent use. The
// application owns its lifecycle; dropping the last reference releases it,
// there is nothing to tear down explicitly.
type Cache struct {
	auth     authclient.Authenticator
	identity authclient.Identity
	build    BuildClientFunc
	clock    clock.PassiveClock
	leeway   time.Duration
	logger   Logger // optional logger

	// perKey selects singleflight-coalesced refreshes instead of holding the
	// cache lock across the authentication call.
	perKey bool
	flight singleflight.Group

	mu      sync.RWMutex
	entries entryStore

	maxEntries int
}

// Option is a functional option for configuring Cache.
type Option func(*Cache)

// WithIdentity sets the process-wide client and pool identity passed to the
// authenticator on every refresh. Defaults to authclient.DefaultIdentity.
func WithIdentity(id authclient.Identity) Option {
	return func(c *Cache) {
		c.identity = id
	}
}

// WithClientFactory replaces the default HTTP client factory
// (httpclient.NewClient) used to construct clients on refresh.
func WithClientFactory(build BuildClientFunc) Option {
	return func(c *Cache) {
		c.build = build
	}
}

// WithClock sets the time source used for expiration checks. Intended for
// tests; defaults to the real clock.
func WithClock(cl clock.PassiveClock) Option {
	return func(c *Cache) {
		c.clock = cl
	}
}

// WithExpiryLeeway refreshes entries the given duration before their actual
// expiry, to avoid handing out a client whose token expires mid-request.
// Defaults to zero: an entry is served for as long as its token is valid.
func WithExpiryLeeway(leeway time.Duration) Option {
	return func(c *Cache) {
		c.leeway = leeway
	}
}

// WithLogger sets a custom logger for client refresh events.
// If not set, no logging will occur.
func WithLogger(logger Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// WithLoggingEnabled enables logging using the default Go log package.
// This is a convenience option that sets the logger to log.Default().
func WithLoggingEnabled() Option {
	return func(c *Cache) {
		c.logger = log.Default()
	}
}

// WithMaxEntries bounds the cache to at most n entries with least-recently-used
// eviction. By default the cache is unbounded and grows with the number of
// distinct API keys seen over the process lifetime. Non-positive n is ignored.
func WithMaxEntries(n int) Option {
	return func(c *Cache) {
		c.maxEntries = n
	}
}

// WithPerKeyRefresh coalesces concurrent refreshes per key instead of holding
// the cache lock across the authentication call.
//
// In the default mode one lock serializes everything, so refreshes for
// unrelated keys queue behind each other for the duration of the network
// call. With per-key refresh, lookups take a read lock only and each key
// refreshes in its own singleflight group: concurrent callers of the same
// expired key still trigger a single authentication call, while other keys
// proceed unblocked.
func WithPerKeyRefresh() Option {
	return func(c *Cache) {
		c.perKey = true
	}
}

// New creates a client cache backed by the given authenticator.
//
// Parameters:
//   - auth: The external authentication collaborator invoked on every refresh
//   - opts: Optional configuration (WithIdentity, WithClientFactory, WithClock,
//     WithExpiryLeeway, WithLogger, WithMaxEntries, WithPerKeyRefresh, ...)
func New(auth authclient.Authenticator, opts ...Option) *Cache {
	c := &Cache{
		auth:     auth,
		identity: authclient.DefaultIdentity(),
		build:    httpclient.NewClient,
		clock:    clock.RealClock{},
	}

	// Apply options
	for _, opt := range opts {
		opt(c)
	}

	if c.maxEntries > 0 {
		c.entries = newLRUStore(c.maxEntries)
	} else {
		c.entries = make(mapStore)
	}

	return c
}

// GetOrRefresh returns an HTTP client authenticated for the given API key.
//
// If a cached client exists and its token has not expired, it is returned
// immediately; no network traffic occurs. Otherwise the cache authenticates
// with the key and secret, builds a fresh client with the resulting bearer
// token, stores it, and returns it. The returned client is shared: it may be
// used from any number of goroutines and copies share the underlying
// transport and connection pool.
//
// The secret is used only for the authentication call and is not retained.
// Errors wrap ErrAuthenticationFailed, ErrInvalidCredentialEncoding or
// ErrClientConstruction and never modify the cached state.
func (c *Cache) GetOrRefresh(ctx context.Context, apiKey, apiSecret string) (*http.Client, error) {
	entry, err := c.entryFor(ctx, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return entry.client, nil
}

// Token returns a valid access token for the given API key, refreshing
// through the same path as GetOrRefresh. Useful when the token must be
// attached to something other than the cached HTTP client, such as gRPC
// request metadata.
func (c *Cache) Token(ctx context.Context, apiKey, apiSecret string) (string, error) {
	entry, err := c.entryFor(ctx, apiKey, apiSecret)
	if err != nil {
		return "", err
	}
	return entry.token, nil
}

// Len returns the number of cached entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries.len()
}

func (c *Cache) entryFor(ctx context.Context, apiKey, apiSecret string) (*expiringClient, error) {
	if c.perKey {
		return c.entryPerKey(ctx, apiKey, apiSecret)
	}

	now := c.clock.Now()

	// One lock guards lookup, refresh and insert. Holding it across the
	// authentication call serializes refreshes for all keys, which also
	// coalesces concurrent refreshes of the same key: later callers find the
	// fresh entry once they acquire the lock.
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries.get(apiKey); ok && entry.valid(now, c.leeway) {
		return entry, nil
	}

	entry, err := c.refresh(ctx, now, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}

	c.entries.add(apiKey, entry)
	return entry, nil
}

// entryPerKey is the WithPerKeyRefresh variant: reads take the read lock only
// and misses are coalesced per key through the singleflight group, so
// unrelated keys never block on each other's authentication calls.
func (c *Cache) entryPerKey(ctx context.Context, apiKey, apiSecret string) (*expiringClient, error) {
	// Fast path: valid entry under the read lock.
	now := c.clock.Now()
	c.mu.RLock()
	entry, ok := c.entries.get(apiKey)
	c.mu.RUnlock()
	if ok && entry.valid(now, c.leeway) {
		return entry, nil
	}

	v, err, _ := c.flight.Do(apiKey, func() (any, error) {
		now := c.clock.Now()

		// Double-check: a refresh that completed while we queued on the
		// flight may already have stored a fresh entry.
		c.mu.RLock()
		entry, ok := c.entries.get(apiKey)
		c.mu.RUnlock()
		if ok && entry.valid(now, c.leeway) {
			return entry, nil
		}

		entry, err := c.refresh(ctx, now, apiKey, apiSecret)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries.add(apiKey, entry)
		c.mu.Unlock()
		return entry, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*expiringClient), nil
}

// refresh runs the authentication handshake and builds a replacement entry.
// It does not touch the cached state; storing the entry is the caller's job,
// so a failure here leaves any prior entry untouched.
func (c *Cache) refresh(ctx context.Context, now time.Time, apiKey, apiSecret string) (*expiringClient, error) {
	out, err := c.auth.Authenticate(ctx, c.identity, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("clientcache: %w: %w", ErrAuthenticationFailed, err)
	}

	headers, err := bearerHeaders(out.AccessToken, apiKey)
	if err != nil {
		return nil, err
	}

	client, err := c.build(headers)
	if err != nil {
		return nil, fmt.Errorf("clientcache: %w: %w", ErrClientConstruction, err)
	}

	entry := &expiringClient{
		client:    client,
		token:     out.AccessToken,
		expiresAt: now.Add(time.Duration(out.ExpiresIn) * time.Second),
	}

	// Log only if logger is configured. The token itself is never logged.
	if c.logger != nil {
		c.logger.Printf("clientcache: refreshed client (expires: %s)", entry.expiresAt.Format(time.RFC3339))
	}

	return entry, nil
}

// bearerHeaders builds the default headers for a refreshed client: the bearer
// authorization value and the identifying API key header. Values that cannot
// appear in an HTTP header field are rejected; the error never echoes the
// token.
func bearerHeaders(accessToken, apiKey string) (http.Header, error) {
	authValue := "Bearer " + accessToken
	if !httpguts.ValidHeaderFieldValue(authValue) {
		return nil, fmt.Errorf("clientcache: authorization header: %w", ErrInvalidCredentialEncoding)
	}
	if !httpguts.ValidHeaderFieldValue(apiKey) {
		return nil, fmt.Errorf("clientcache: %s header: %w", HeaderAPIKey, ErrInvalidCredentialEncoding)
	}

	headers := http.Header{}
	headers.Set("Authorization", authValue)
	headers.Set(HeaderAPIKey, apiKey)
	return headers, nil
}
