package clientcache

import (
	"net/http"
	"time"
)

// expiringClient pairs a constructed HTTP client with the absolute instant
// after which its embedded access token is no longer valid.
//
// Entries are immutable once constructed; a refresh replaces the entry
// wholesale rather than mutating it in place.
type expiringClient struct {
	client    *http.Client
	token     string
	expiresAt time.Time
}

// valid reports whether the entry may still be served at now. A non-zero
// leeway shrinks the validity window so callers refresh slightly before the
// real expiry.
func (e *expiringClient) valid(now time.Time, leeway time.Duration) bool {
	return now.Before(e.expiresAt.Add(-leeway))
}
