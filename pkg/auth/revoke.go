// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Revoke asks the provider to invalidate the credential's access token. Only
// a 200 response counts as success.
func Revoke(ctx context.Context, httpClient *http.Client, revokeURL string, cred Credential) error {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	form := url.Values{"token": {cred.Token}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, revokeURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return NewAuthErrorWithCause(ErrRevocationFailed, "revocation request failed", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return NewAuthError(ErrRevocationFailed, fmt.Sprintf("revocation endpoint returned status code: %d", resp.StatusCode))
	}
	return nil
}
