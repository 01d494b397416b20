// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kusaridev/oauth-webclient/pkg/constants"
	"github.com/spf13/viper"
)

const EnvPrefix = "WEBCLIENT"

// Config represents the application configuration
type Config struct {
	Listen        string        `mapstructure:"listen"`
	ExternalURL   string        `mapstructure:"external-url"`
	ClientSecrets string        `mapstructure:"client-secrets"`
	Issuer        string        `mapstructure:"issuer"`
	RevokeURL     string        `mapstructure:"revoke-url"`
	UserinfoURL   string        `mapstructure:"userinfo-url"`
	RedisURL      string        `mapstructure:"redis-url"`
	SessionTTL    time.Duration `mapstructure:"session-ttl"`
	CookieSecure  bool          `mapstructure:"cookie-secure"`
	Verbose       bool          `mapstructure:"verbose"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("listen", constants.DefaultListenAddr)
	v.SetDefault("external-url", constants.DefaultExternalURL)
	v.SetDefault("client-secrets", constants.DefaultClientSecretsFile)
	v.SetDefault("session-ttl", 24*time.Hour)
}

// Init wires environment lookup into v and reads configFile when given.
// Environment variables are named WEBCLIENT_<KEY> with dashes as underscores.
func Init(v *viper.Viper, configFile string) error {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		return nil
	}
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}
	return nil
}

// LoadDotEnv loads a .env file into the process environment. A missing file
// is not an error; variables already set are not overridden.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load decodes v into a Config and checks it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen address is required")
	}
	if c.ExternalURL == "" {
		return fmt.Errorf("external-url is required")
	}
	if c.ClientSecrets == "" {
		return fmt.Errorf("client-secrets is required")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session-ttl must be positive, got %s", c.SessionTTL)
	}
	return nil
}
