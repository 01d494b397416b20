// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

package auth

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/oauth2"
)

// Flow runs the authorization code grant for one session at a time, keeping
// all of its state in a SessionStore.
type Flow struct {
	client      *Client
	store       SessionStore
	httpClient  *http.Client
	userinfoURL string
	revokeURL   string
}

func NewFlow(client *Client, store SessionStore, httpClient *http.Client, userinfoURL, revokeURL string) *Flow {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Flow{
		client:      client,
		store:       store,
		httpClient:  httpClient,
		userinfoURL: userinfoURL,
		revokeURL:   revokeURL,
	}
}

// Begin stores a fresh pending authorization for the session and returns the
// URL to redirect the user agent to.
func (f *Flow) Begin(ctx context.Context, sessionID string) (string, error) {
	pending, err := NewPending()
	if err != nil {
		return "", err
	}
	if err := f.store.PutPending(ctx, sessionID, pending); err != nil {
		return "", NewAuthErrorWithCause(ErrTokenStorage, "failed to store pending authorization", err)
	}
	return f.client.AuthorizationURL(pending), nil
}

// Complete consumes the session's pending authorization, verifies the
// callback against it and stores the exchanged credential.
func (f *Flow) Complete(ctx context.Context, sessionID, callbackURL string) (*Credential, error) {
	pending, err := f.store.TakePending(ctx, sessionID)
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnreadable) {
		return nil, NewAuthErrorWithCause(ErrStateMismatch, "no usable pending authorization for session", err)
	}
	if err != nil {
		return nil, NewAuthErrorWithCause(ErrTokenStorage, "failed to load pending authorization", err)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, f.httpClient)
	cred, err := f.client.Exchange(ctx, *pending, callbackURL)
	if err != nil {
		return nil, err
	}

	if err := f.store.PutCredential(ctx, sessionID, *cred); err != nil {
		return nil, NewAuthErrorWithCause(ErrTokenStorage, "failed to store credential", err)
	}
	return cred, nil
}

// Authenticated reports whether the session holds a credential.
func (f *Flow) Authenticated(ctx context.Context, sessionID string) (bool, error) {
	_, err := f.credential(ctx, sessionID)
	if IsCode(err, ErrUnauthenticated) {
		return false, nil
	}
	return err == nil, err
}

// Profile fetches the userinfo payload for the session's credential.
func (f *Flow) Profile(ctx context.Context, sessionID string) ([]byte, error) {
	cred, err := f.credential(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return FetchProfile(ctx, f.httpClient, f.userinfoURL, *cred)
}

// Logout revokes the session's credential and clears it. A failed revocation
// leaves the credential in place so the call can be retried. The returned
// bool is false when the session had no credential.
func (f *Flow) Logout(ctx context.Context, sessionID string) (bool, error) {
	cred, err := f.credential(ctx, sessionID)
	if IsCode(err, ErrUnauthenticated) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := Revoke(ctx, f.httpClient, f.revokeURL, *cred); err != nil {
		return true, err
	}

	if err := f.store.DeleteCredential(ctx, sessionID); err != nil {
		return true, NewAuthErrorWithCause(ErrTokenStorage, "failed to clear credential", err)
	}
	return true, nil
}

// credential loads the session's credential. A stored record that cannot be
// decoded or is only partially populated is cleared and the session treated
// as unauthenticated.
func (f *Flow) credential(ctx context.Context, sessionID string) (*Credential, error) {
	cred, err := f.store.Credential(ctx, sessionID)
	if errors.Is(err, ErrNotFound) {
		return nil, NewAuthError(ErrUnauthenticated, "no credential in session")
	}
	if errors.Is(err, ErrUnreadable) {
		return nil, f.discardCredential(ctx, sessionID, err)
	}
	if err != nil {
		return nil, NewAuthErrorWithCause(ErrTokenStorage, "failed to load credential", err)
	}
	if err := cred.Validate(); err != nil {
		return nil, f.discardCredential(ctx, sessionID, err)
	}
	return cred, nil
}

func (f *Flow) discardCredential(ctx context.Context, sessionID string, cause error) error {
	if err := f.store.DeleteCredential(ctx, sessionID); err != nil {
		return NewAuthErrorWithCause(ErrTokenStorage, "failed to clear unusable credential", err)
	}
	return NewAuthErrorWithCause(ErrUnauthenticated, "discarded unusable credential", cause)
}
