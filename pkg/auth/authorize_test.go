// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

package auth

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStateDistinct(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		state, err := GenerateState()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(state), 43)
		assert.False(t, seen[state], "state %q generated twice", state)
		seen[state] = true
	}
}

func TestNewPending(t *testing.T) {
	first, err := NewPending()
	require.NoError(t, err)
	second, err := NewPending()
	require.NoError(t, err)

	assert.NotEmpty(t, first.State)
	assert.NotEmpty(t, first.Verifier)
	assert.NotEqual(t, first.State, second.State)
	assert.NotEqual(t, first.Verifier, second.Verifier)
}

func TestAuthorizationURL(t *testing.T) {
	client := NewClient(ClientConfig{
		ClientID:    testClientID,
		AuthURL:     "https://idp.example.com/o/oauth2/auth",
		TokenURL:    "https://idp.example.com/token",
		RedirectURL: "http://localhost:8000/oauth2callback",
		Scopes:      []string{"profile", "email", "openid"},
	})
	pending := Pending{State: "state-xyz", Verifier: "verifier-0123456789012345678901234567890123"}

	raw := client.AuthorizationURL(pending)
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "idp.example.com", u.Host)
	assert.Equal(t, "/o/oauth2/auth", u.Path)

	q := u.Query()
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, testClientID, q.Get("client_id"))
	assert.Equal(t, "state-xyz", q.Get("state"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "true", q.Get("include_granted_scopes"))
	assert.Equal(t, "profile email openid", q.Get("scope"))
	assert.Equal(t, "http://localhost:8000/oauth2callback", q.Get("redirect_uri"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
	assert.NotEmpty(t, q.Get("code_challenge"))
	assert.Empty(t, q.Get("client_secret"))
}
