// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"

	"github.com/kusaridev/oauth-webclient/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configFile string
	envFile    string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to a .env file loaded before reading the environment")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	mustBindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

var rootCmd = &cobra.Command{
	Use:   "webclient",
	Short: "OAuth 2.0 web client",
	Long:  "webclient - obtains delegated user authorization with the authorization code grant and shows the user's profile",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(envFile); err != nil {
			return err
		}
		return config.Init(viper.GetViper(), configFile)
	},
}

func mustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

func Execute() error {

	rootCmd.AddCommand(Serve())

	return rootCmd.ExecuteContext(context.Background())
}
