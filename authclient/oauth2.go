package authclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2/clientcredentials"
)

// OAuth2Authenticator adapts the OAuth2 client-credentials flow to the
// Authenticator interface, for authentication services that speak standard
// OAuth2 instead of the JSON token endpoint protocol.
//
// The API key and secret are presented as the OAuth2 client ID and secret; the
// Identity constants are ignored because the token URL already pins the
// application and pool.
type OAuth2Authenticator struct {
	// TokenURL is the OAuth2 token endpoint.
	TokenURL string

	// Scopes is a space-separated list of OAuth2 scopes to request.
	Scopes string
}

// NewOAuth2Authenticator creates an authenticator for the given OAuth2 token
// endpoint.
//
// Parameters:
//   - tokenURL: OAuth2 token endpoint (e.g., "https://auth.example.com/oauth/v2/token")
//   - scopes: Space-separated list of OAuth2 scopes (e.g., "openid profile email")
func NewOAuth2Authenticator(tokenURL, scopes string) *OAuth2Authenticator {
	return &OAuth2Authenticator{TokenURL: tokenURL, Scopes: scopes}
}

// Authenticate implements the Authenticator interface using the client
// credentials grant.
func (a *OAuth2Authenticator) Authenticate(ctx context.Context, _ Identity, apiKey, apiSecret string) (Output, error) {
	config := &clientcredentials.Config{
		ClientID:     apiKey,
		ClientSecret: apiSecret,
		TokenURL:     a.TokenURL,
		Scopes:       strings.Fields(a.Scopes),
	}

	token, err := config.Token(ctx)
	if err != nil {
		return Output{}, fmt.Errorf("authclient: oauth2 token fetch failed: %w", err)
	}

	out := Output{AccessToken: token.AccessToken}
	if !token.Expiry.IsZero() {
		out.ExpiresIn = int64(time.Until(token.Expiry).Seconds())
	}

	return out, nil
}
