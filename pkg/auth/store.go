// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

package auth

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a SessionStore when the session holds no value
// for the requested key.
var ErrNotFound = errors.New("not found in session")

// ErrUnreadable is wrapped by a SessionStore when a stored value exists but
// cannot be decoded.
var ErrUnreadable = errors.New("unreadable session value")

// SessionStore holds per-session authorization state. Implementations must
// isolate sessions from each other.
type SessionStore interface {
	// PutPending records the pending authorization, replacing any earlier one.
	PutPending(ctx context.Context, sessionID string, p Pending) error
	// TakePending returns and removes the pending authorization in one step.
	TakePending(ctx context.Context, sessionID string) (*Pending, error)
	PutCredential(ctx context.Context, sessionID string, cred Credential) error
	Credential(ctx context.Context, sessionID string) (*Credential, error)
	DeleteCredential(ctx context.Context, sessionID string) error
}
