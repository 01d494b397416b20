// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

package auth

import (
	"golang.org/x/oauth2"
)

// ClientConfig identifies the calling application to the provider.
type ClientConfig struct {
	ClientID     string
	ClientSecret string
	AuthURL      string
	TokenURL     string
	RedirectURL  string
	Scopes       []string
}

type Client struct {
	cfg          ClientConfig
	oauth2Config *oauth2.Config
}

func NewClient(cfg ClientConfig) *Client {
	return &Client{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
	}
}

// Config returns the client configuration the Client was built with.
func (c *Client) Config() ClientConfig {
	return c.cfg
}
