// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

package provider

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/kusaridev/oauth-webclient/pkg/constants"
	"github.com/kusaridev/oauth-webclient/pkg/secrets"
)

// Scopes is the fixed scope list requested from the provider: basic profile,
// email and OpenID.
var Scopes = []string{constants.ScopeUserinfoProfile, constants.ScopeUserinfoEmail, oidc.ScopeOpenID}

// Endpoints are the provider URLs the flow talks to.
type Endpoints struct {
	AuthURL     string
	TokenURL    string
	UserinfoURL string
	RevokeURL   string
}

// Options override individual endpoints. When Issuer is set the provider's
// discovery document is fetched first.
type Options struct {
	Issuer      string
	UserinfoURL string
	RevokeURL   string
	HTTPClient  *http.Client
}

type discoveryClaims struct {
	RevocationEndpoint string `json:"revocation_endpoint"`
}

// Resolve picks each endpoint from, in order: explicit options, the issuer's
// discovery document, the client-secrets descriptor, the Google defaults.
func Resolve(ctx context.Context, opts Options, d *secrets.Descriptor) (Endpoints, error) {
	ep := Endpoints{
		AuthURL:     constants.DefaultAuthURL,
		TokenURL:    constants.DefaultTokenURL,
		UserinfoURL: constants.DefaultUserinfoURL,
		RevokeURL:   constants.DefaultRevokeURL,
	}

	if d != nil {
		ep.AuthURL = firstNonEmpty(d.AuthURI, ep.AuthURL)
		ep.TokenURL = firstNonEmpty(d.TokenURI, ep.TokenURL)
	}

	if opts.Issuer != "" {
		if opts.HTTPClient != nil {
			ctx = oidc.ClientContext(ctx, opts.HTTPClient)
		}
		p, err := oidc.NewProvider(ctx, opts.Issuer)
		if err != nil {
			return Endpoints{}, fmt.Errorf("failed to discover provider %s: %w", opts.Issuer, err)
		}
		var claims discoveryClaims
		if err := p.Claims(&claims); err != nil {
			return Endpoints{}, fmt.Errorf("failed to decode discovery document: %w", err)
		}

		endpoint := p.Endpoint()
		ep.AuthURL = firstNonEmpty(endpoint.AuthURL, ep.AuthURL)
		ep.TokenURL = firstNonEmpty(endpoint.TokenURL, ep.TokenURL)
		ep.UserinfoURL = firstNonEmpty(p.UserInfoEndpoint(), ep.UserinfoURL)
		ep.RevokeURL = firstNonEmpty(claims.RevocationEndpoint, ep.RevokeURL)
	}

	ep.UserinfoURL = firstNonEmpty(opts.UserinfoURL, ep.UserinfoURL)
	ep.RevokeURL = firstNonEmpty(opts.RevokeURL, ep.RevokeURL)
	return ep, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
