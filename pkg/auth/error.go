// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

package auth

import (
	"errors"
	"fmt"
)

// AuthError represents authorization flow errors
type AuthError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

type ErrorCode int

const (
	ErrStateMismatch ErrorCode = iota
	ErrTokenExchangeFailed
	ErrUnauthenticated
	ErrRevocationFailed
	ErrAuthorizationDenied
	ErrTokenStorage
	ErrInvalidCredential
	ErrInvalidConfig
)

var codeNames = map[ErrorCode]string{
	ErrStateMismatch:       "state mismatch",
	ErrTokenExchangeFailed: "token exchange failed",
	ErrUnauthenticated:     "unauthenticated",
	ErrRevocationFailed:    "revocation failed",
	ErrAuthorizationDenied: "authorization denied",
	ErrTokenStorage:        "token storage",
	ErrInvalidCredential:   "invalid credential",
	ErrInvalidConfig:       "invalid config",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("code %d", int(c))
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("auth error [%s]: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("auth error [%s]: %s", e.Code, e.Message)
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

func NewAuthError(code ErrorCode, message string) *AuthError {
	return &AuthError{Code: code, Message: message}
}

func NewAuthErrorWithCause(code ErrorCode, message string, cause error) *AuthError {
	return &AuthError{Code: code, Message: message, Cause: cause}
}

// IsCode reports whether err, or anything it wraps, is an AuthError with code.
func IsCode(err error, code ErrorCode) bool {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Code == code
	}
	return false
}
