// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

package auth

import (
	"context"
	"crypto/subtle"
	"net/url"

	"golang.org/x/oauth2"
)

// VerifyCallback checks the returned state against the pending one and
// extracts the authorization code. No network call is made.
func VerifyCallback(p Pending, callbackURL string) (string, error) {
	u, err := url.Parse(callbackURL)
	if err != nil {
		return "", NewAuthErrorWithCause(ErrStateMismatch, "unparseable callback URL", err)
	}
	query := u.Query()

	state := query.Get("state")
	if p.State == "" || subtle.ConstantTimeCompare([]byte(state), []byte(p.State)) != 1 {
		return "", NewAuthError(ErrStateMismatch, "invalid state parameter")
	}

	if errorParam := query.Get("error"); errorParam != "" {
		return "", NewAuthError(ErrAuthorizationDenied, "OAuth error: "+errorParam)
	}

	code := query.Get("code")
	if code == "" {
		return "", NewAuthError(ErrTokenExchangeFailed, "no authorization code received")
	}
	return code, nil
}

// Exchange verifies the callback and trades its code for a Credential.
func (c *Client) Exchange(ctx context.Context, p Pending, callbackURL string) (*Credential, error) {
	code, err := VerifyCallback(p, callbackURL)
	if err != nil {
		return nil, err
	}

	opts := []oauth2.AuthCodeOption{}
	if p.Verifier != "" {
		opts = append(opts, oauth2.VerifierOption(p.Verifier))
	}
	token, err := c.oauth2Config.Exchange(ctx, code, opts...)
	if err != nil {
		return nil, NewAuthErrorWithCause(ErrTokenExchangeFailed, "failed to exchange token", err)
	}

	return NewCredential(token, c.cfg)
}
