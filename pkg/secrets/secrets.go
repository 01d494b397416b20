// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

// Package secrets reads the client-secrets descriptor issued by the identity
// provider's developer console.
package secrets

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Descriptor identifies the application to the provider.
type Descriptor struct {
	ClientID     string   `json:"client_id" yaml:"client_id"`
	ClientSecret string   `json:"client_secret" yaml:"client_secret"`
	AuthURI      string   `json:"auth_uri" yaml:"auth_uri"`
	TokenURI     string   `json:"token_uri" yaml:"token_uri"`
	RedirectURIs []string `json:"redirect_uris,omitempty" yaml:"redirect_uris,omitempty"`
}

// file is the console download: the descriptor sits under "web" or "installed".
type file struct {
	Web       *Descriptor `json:"web" yaml:"web"`
	Installed *Descriptor `json:"installed" yaml:"installed"`
}

var ErrNoClient = errors.New("client secrets contain neither a \"web\" nor an \"installed\" client")

// Load reads a descriptor from path. Files ending in .yaml or .yml are YAML,
// anything else is JSON.
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read client secrets: %w", err)
	}

	var f file
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	default:
		err = json.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse client secrets %s: %w", path, err)
	}
	return f.descriptor()
}

func (f file) descriptor() (*Descriptor, error) {
	d := f.Web
	if d == nil {
		d = f.Installed
	}
	if d == nil {
		return nil, ErrNoClient
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks the fields every flow needs. Endpoint URLs may be left
// empty when they are discovered from an issuer instead.
func (d Descriptor) Validate() error {
	if d.ClientID == "" {
		return fmt.Errorf("client secrets missing client_id")
	}
	if d.ClientSecret == "" {
		return fmt.Errorf("client secrets missing client_secret")
	}
	return nil
}
