// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

package constants

const (
	// DefaultAuthURL is the Google authorization endpoint
	DefaultAuthURL = "https://accounts.google.com/o/oauth2/auth"

	// DefaultTokenURL is the Google token endpoint
	DefaultTokenURL = "https://oauth2.googleapis.com/token"

	// DefaultRevokeURL is the Google token revocation endpoint
	DefaultRevokeURL = "https://accounts.google.com/o/oauth2/revoke"

	// DefaultUserinfoURL is the Google OAuth2 v2 userinfo endpoint
	DefaultUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	ScopeUserinfoProfile = "https://www.googleapis.com/auth/userinfo.profile"
	ScopeUserinfoEmail   = "https://www.googleapis.com/auth/userinfo.email"

	DefaultListenAddr        = "localhost:8000"
	DefaultExternalURL       = "http://localhost:8000"
	DefaultClientSecretsFile = "client_secret.json"
)
