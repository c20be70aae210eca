package authclient

import "context"

// Default identity constants used when a Cache is constructed without
// WithIdentity. They identify this application and its credential pool to the
// authentication service.
const (
	DefaultClientID = "1bpd19lcr33qvg5cr3oi79rdap"
	DefaultPoolID   = "us-west-2_iLmIggsiy"
)

// Identity carries the process-wide identifiers passed to the authentication
// service on every call. These are public configuration, not credentials.
type Identity struct {
	// ClientID identifies the calling application.
	ClientID string

	// PoolID identifies the credential pool the API key belongs to.
	PoolID string
}

// DefaultIdentity returns the identity used when none is configured.
func DefaultIdentity() Identity {
	return Identity{ClientID: DefaultClientID, PoolID: DefaultPoolID}
}

// Output is the result of a successful authentication call.
type Output struct {
	// AccessToken is the bearer token to embed in outgoing request headers.
	AccessToken string

	// ExpiresIn is the token's time-to-live in seconds. A zero or negative
	// value means the token is already expired from the caller's point of view.
	ExpiresIn int64
}

// Authenticator exchanges an API key and secret for a short-lived access token.
//
// Implementations may be slow and network-bound. They must be safe for
// concurrent use and must honor ctx cancellation. Callers do not retry through
// this interface; implementations are free to retry internally if their
// protocol allows it.
type Authenticator interface {
	Authenticate(ctx context.Context, id Identity, apiKey, apiSecret string) (Output, error)
}

// Func adapts a plain function to the Authenticator interface.
type Func func(ctx context.Context, id Identity, apiKey, apiSecret string) (Output, error)

// Authenticate calls the underlying function.
func (f Func) Authenticate(ctx context.Context, id Identity, apiKey, apiSecret string) (Output, error) {
	return f(ctx, id, apiKey, apiSecret)
}
