// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

package auth

import (
	"crypto/rand"
	"encoding/base64"

	"golang.org/x/oauth2"
)

const stateBytes = 32

// GenerateState returns an unguessable URL-safe state token.
func GenerateState() (string, error) {
	return generateRandomString(stateBytes)
}

func generateRandomString(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// NewPending generates the state and PKCE verifier for one authorization request.
func NewPending() (Pending, error) {
	// Generate and use state to prevent CSRF attacks
	state, err := GenerateState()
	if err != nil {
		return Pending{}, NewAuthErrorWithCause(ErrInvalidConfig, "failed to generate state", err)
	}
	// use PKCE to protect the auth code exchange
	return Pending{State: state, Verifier: oauth2.GenerateVerifier()}, nil
}

// AuthorizationURL builds the provider URL the user agent is redirected to.
// Offline access is requested so a refresh token is issued, and previously
// granted scopes are kept.
func (c *Client) AuthorizationURL(p Pending) string {
	return c.oauth2Config.AuthCodeURL(p.State,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
		oauth2.S256ChallengeOption(p.Verifier),
	)
}
