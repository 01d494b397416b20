// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
)

const (
	testClientID     = "client-123"
	testClientSecret = "secret-456"
	testGoodCode     = "good-code"
	testAccessToken  = "access-abc"
	testRefreshToken = "refresh-def"
)

// fakeProvider stands in for the authorization server, userinfo API and
// revocation endpoint.
type fakeProvider struct {
	*httptest.Server
	tokenCalls   atomic.Int32
	revokeCalls  atomic.Int32
	revokeStatus atomic.Int32

	mu            sync.Mutex
	grantedScope  string
	lastVerifier  string
	revokedTokens []string
}

func (p *fakeProvider) grantScope(scope string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.grantedScope = scope
}

func (p *fakeProvider) verifier() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastVerifier
}

func (p *fakeProvider) revoked() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.revokedTokens...)
}

func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()
	p := &fakeProvider{}
	p.revokeStatus.Store(http.StatusOK)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		p.tokenCalls.Add(1)
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		p.mu.Lock()
		p.lastVerifier = r.PostForm.Get("code_verifier")
		p.mu.Unlock()
		if r.PostForm.Get("code") != testGoodCode || r.PostForm.Get("client_id") != testClientID || r.PostForm.Get("client_secret") != testClientSecret {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
			return
		}
		resp := map[string]any{
			"access_token":  testAccessToken,
			"refresh_token": testRefreshToken,
			"token_type":    "Bearer",
			"expires_in":    3600,
		}
		p.mu.Lock()
		if p.grantedScope != "" {
			resp["scope"] = p.grantedScope
		}
		p.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})
	mux.HandleFunc("GET /userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testAccessToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1234","email":"jolene@example.com"}`))
	})
	mux.HandleFunc("POST /revoke", func(w http.ResponseWriter, r *http.Request) {
		p.revokeCalls.Add(1)
		_ = r.ParseForm()
		p.mu.Lock()
		p.revokedTokens = append(p.revokedTokens, r.PostForm.Get("token"))
		p.mu.Unlock()
		w.WriteHeader(int(p.revokeStatus.Load()))
	})

	p.Server = httptest.NewServer(mux)
	t.Cleanup(p.Close)
	return p
}

func (p *fakeProvider) clientConfig() ClientConfig {
	return ClientConfig{
		ClientID:     testClientID,
		ClientSecret: testClientSecret,
		AuthURL:      p.URL + "/auth",
		TokenURL:     p.URL + "/token",
		RedirectURL:  "http://localhost:8000/oauth2callback",
		Scopes:       []string{"profile", "email", "openid"},
	}
}
