// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

// FetchProfile calls the protected userinfo endpoint with the credential's
// access token and returns the raw payload. The token is never refreshed.
func FetchProfile(ctx context.Context, httpClient *http.Client, userinfoURL string, cred Credential) ([]byte, error) {
	if cred.Token == "" {
		return nil, NewAuthError(ErrUnauthenticated, "no access token")
	}
	if httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
	}
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(cred.oauth2Token()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userinfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, NewAuthError(ErrUnauthenticated, fmt.Sprintf("profile endpoint rejected token, status code: %d", resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("failed to fetch profile, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}
