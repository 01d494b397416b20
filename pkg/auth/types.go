// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

package auth

import (
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Credential is the delegated authorization obtained from a successful code
// exchange. Values are only built by NewCredential or decoded from a stored
// record that passes Validate.
type Credential struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenURI     string    `json:"token_uri"`
	ClientID     string    `json:"client_id"`
	ClientSecret string    `json:"client_secret"`
	Scopes       []string  `json:"scopes"`
	Expiry       time.Time `json:"expiry,omitzero"`
}

// Pending correlates an authorization request with its callback.
type Pending struct {
	State    string `json:"state"`
	Verifier string `json:"verifier"`
}

// NewCredential builds a Credential from a token endpoint response. Granted
// scopes come from the response's scope field when the provider sends one,
// otherwise the requested scopes are recorded.
func NewCredential(token *oauth2.Token, cfg ClientConfig) (*Credential, error) {
	if token == nil {
		return nil, NewAuthError(ErrInvalidCredential, "no token in exchange response")
	}

	scopes := cfg.Scopes
	if granted, ok := token.Extra("scope").(string); ok && strings.TrimSpace(granted) != "" {
		scopes = strings.Fields(granted)
	}

	cred := &Credential{
		Token:        token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenURI:     cfg.TokenURL,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Scopes:       append([]string(nil), scopes...),
		Expiry:       token.Expiry,
	}
	if err := cred.Validate(); err != nil {
		return nil, err
	}
	return cred, nil
}

// Validate rejects partially populated records.
func (c Credential) Validate() error {
	missing := []string{}
	if c.Token == "" {
		missing = append(missing, "token")
	}
	if c.TokenURI == "" {
		missing = append(missing, "token_uri")
	}
	if c.ClientID == "" {
		missing = append(missing, "client_id")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "client_secret")
	}
	if len(c.Scopes) == 0 {
		missing = append(missing, "scopes")
	}
	if len(missing) > 0 {
		return NewAuthError(ErrInvalidCredential, "credential missing "+strings.Join(missing, ", "))
	}
	return nil
}

func (c Credential) oauth2Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  c.Token,
		RefreshToken: c.RefreshToken,
		TokenType:    "Bearer",
	}
}
