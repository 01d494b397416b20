// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kusaridev/oauth-webclient/pkg/auth"
	"github.com/kusaridev/oauth-webclient/pkg/config"
	"github.com/kusaridev/oauth-webclient/pkg/constants"
	"github.com/kusaridev/oauth-webclient/pkg/provider"
	"github.com/kusaridev/oauth-webclient/pkg/secrets"
	"github.com/kusaridev/oauth-webclient/pkg/server"
	"github.com/kusaridev/oauth-webclient/pkg/session"
	"github.com/kusaridev/oauth-webclient/pkg/url"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const outboundTimeout = 30 * time.Second

func init() {
	servecmd.Flags().String("listen", constants.DefaultListenAddr, "address to listen on")
	servecmd.Flags().String("external-url", constants.DefaultExternalURL, "URL the user agent reaches this server at; the callback is <external-url>/oauth2callback")
	servecmd.Flags().String("client-secrets", constants.DefaultClientSecretsFile, "path to the client secrets file (JSON, or YAML with a .yaml extension)")
	servecmd.Flags().String("issuer", "", "OpenID Connect issuer URL to discover endpoints from (optional)")
	servecmd.Flags().String("revoke-url", "", "token revocation endpoint (overrides discovery and defaults)")
	servecmd.Flags().String("userinfo-url", "", "profile endpoint (overrides discovery and defaults)")
	servecmd.Flags().String("redis-url", "", "store sessions in Redis instead of process memory (optional)")
	servecmd.Flags().Duration("session-ttl", 24*time.Hour, "session lifetime")
	servecmd.Flags().Bool("cookie-secure", false, "mark the session cookie Secure (enable behind TLS)")

	for _, name := range []string{"listen", "external-url", "client-secrets", "issuer", "revoke-url", "userinfo-url", "redis-url", "session-ttl", "cookie-secure"} {
		mustBindPFlag(name, servecmd.Flags().Lookup(name))
	}
}

var servecmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web client",
	Long: `Serve the web client.

Routes:
  GET /                the signed-in user's profile, or a redirect to /authorize
  GET /authorize       redirect to the provider's consent page
  GET /oauth2callback  the provider's redirect target
  GET /logout          revoke the stored credential`,
	Args: cobra.NoArgs,
}

func Serve() *cobra.Command {
	servecmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	}

	return servecmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	descriptor, err := secrets.Load(cfg.ClientSecrets)
	if err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: outboundTimeout}

	endpoints, err := provider.Resolve(ctx, provider.Options{
		Issuer:      cfg.Issuer,
		UserinfoURL: cfg.UserinfoURL,
		RevokeURL:   cfg.RevokeURL,
		HTTPClient:  httpClient,
	}, descriptor)
	if err != nil {
		return err
	}

	redirectURL, err := url.Build(cfg.ExternalURL, "oauth2callback")
	if err != nil {
		return fmt.Errorf("invalid external-url: %w", err)
	}

	if cfg.Verbose {
		fmt.Printf(" AuthURL: %s\n", endpoints.AuthURL)
		fmt.Printf(" TokenURL: %s\n", endpoints.TokenURL)
		fmt.Printf(" UserinfoURL: %s\n", endpoints.UserinfoURL)
		fmt.Printf(" RevokeURL: %s\n", endpoints.RevokeURL)
		fmt.Printf(" ClientId: %s\n", descriptor.ClientID)
		fmt.Printf(" CallbackUrl: %s\n", *redirectURL)
		fmt.Println()
	}

	client := auth.NewClient(auth.ClientConfig{
		ClientID:     descriptor.ClientID,
		ClientSecret: descriptor.ClientSecret,
		AuthURL:      endpoints.AuthURL,
		TokenURL:     endpoints.TokenURL,
		RedirectURL:  *redirectURL,
		Scopes:       provider.Scopes,
	})

	var store auth.SessionStore
	if cfg.RedisURL != "" {
		redisStore, err := session.NewRedisStoreFromURL(ctx, cfg.RedisURL, cfg.SessionTTL)
		if err != nil {
			return err
		}
		defer func() {
			_ = redisStore.Close()
		}()
		store = redisStore
	} else {
		store = session.NewMemoryStore(cfg.SessionTTL)
	}

	flow := auth.NewFlow(client, store, httpClient, endpoints.UserinfoURL, endpoints.RevokeURL)
	handler := server.New(flow, session.Cookies{Secure: cfg.CookieSecure, TTL: cfg.SessionTTL}, cfg.Verbose)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, cfg.Listen, handler)
}
