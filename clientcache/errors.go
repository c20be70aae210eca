package clientcache

import "errors"

// Error kinds returned by GetOrRefresh and Token. All returned errors wrap
// exactly one of these sentinels, so callers can classify failures with
// errors.Is. None of them leaves the cache in a partially updated state: the
// prior entry for the key, if any, remains untouched.
var (
	// ErrAuthenticationFailed indicates the external authentication call
	// failed (bad credentials, network error, service error). Not retried.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidCredentialEncoding indicates the access token or API key
	// cannot be encoded as an HTTP header value.
	ErrInvalidCredentialEncoding = errors.New("credential cannot be encoded as a header value")

	// ErrClientConstruction indicates the client factory failed to build a
	// client from the authorization headers.
	ErrClientConstruction = errors.New("client construction failed")
)
