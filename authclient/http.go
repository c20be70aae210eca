package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// HTTPAuthenticator authenticates against a JSON token endpoint.
//
// It POSTs the identity constants and credential pair as a JSON document and
// expects a JSON response carrying the access token and its time-to-live:
//
//	{"access_token": "...", "expires_in": 3600}
//
// The zero value is not usable; construct with NewHTTPAuthenticator.
type HTTPAuthenticator struct {
	// Endpoint is the token endpoint URL.
	Endpoint string

	// HTTPClient performs the token requests. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// DeriveExpiryFromToken enables reading the JWT "exp" claim (without
	// signature verification) to compute ExpiresIn when the endpoint omits
	// expires_in. The claim is only used for expiry bookkeeping, never for
	// trust decisions.
	DeriveExpiryFromToken bool
}

// NewHTTPAuthenticator creates an authenticator for the given token endpoint.
func NewHTTPAuthenticator(endpoint string) *HTTPAuthenticator {
	return &HTTPAuthenticator{Endpoint: endpoint}
}

type tokenRequest struct {
	ClientID  string `json:"client_id"`
	PoolID    string `json:"pool_id"`
	APIKey    string `json:"api_key"`
	APISecret string `json:"api_secret"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Authenticate implements the Authenticator interface.
func (a *HTTPAuthenticator) Authenticate(ctx context.Context, id Identity, apiKey, apiSecret string) (Output, error) {
	if a.Endpoint == "" {
		return Output{}, errors.New("authclient: token endpoint is required")
	}

	body, err := json.Marshal(tokenRequest{
		ClientID:  id.ClientID,
		PoolID:    id.PoolID,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})
	if err != nil {
		return Output{}, fmt.Errorf("authclient: encode token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.Endpoint, bytes.NewReader(body))
	if err != nil {
		return Output{}, fmt.Errorf("authclient: build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := a.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return Output{}, fmt.Errorf("authclient: token request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	// Cap the body read; token responses are small and error bodies may not be.
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Output{}, fmt.Errorf("authclient: read token response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Output{}, fmt.Errorf("authclient: token endpoint returned %s: %s", resp.Status, truncate(data, 256))
	}

	var tr tokenResponse
	if err := json.Unmarshal(data, &tr); err != nil {
		return Output{}, fmt.Errorf("authclient: decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return Output{}, errors.New("authclient: token response missing access_token")
	}

	out := Output{AccessToken: tr.AccessToken, ExpiresIn: tr.ExpiresIn}

	if out.ExpiresIn == 0 && a.DeriveExpiryFromToken {
		if ttl, err := expiryFromToken(tr.AccessToken, time.Now()); err == nil {
			out.ExpiresIn = ttl
		}
	}

	return out, nil
}

// expiryFromToken reads the unverified "exp" claim of a JWT access token and
// returns the remaining seconds until expiry.
func expiryFromToken(token string, now time.Time) (int64, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return 0, fmt.Errorf("authclient: parse access token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0, errors.New("authclient: access token has no exp claim")
	}

	return int64(exp.Time.Sub(now).Seconds()), nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
