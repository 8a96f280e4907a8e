package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v9"
	"github.com/spf13/cobra"

	"notification-admin/pkg/client"
)

// cliConfig is the environment-driven configuration for the admin CLI.
// Flags take precedence over environment variables.
type cliConfig struct {
	APIURL string `env:"NOTIFY_ADMIN_API_URL" envDefault:"http://localhost:8080"`
	Token  string `env:"NOTIFY_ADMIN_TOKEN"`
}

var (
	flagAPIURL string
	flagToken  string

	apiClient *client.Client
)

var rootCmd = &cobra.Command{
	Use:   "notify-admin",
	Short: "Admin CLI for the notification dashboard API",
	Long: `notify-admin manages delivery notifications, admin alerts, and leads
through the notification admin API.

Credentials come from the NOTIFY_ADMIN_TOKEN environment variable or the
--token flag; obtain one with "notify-admin login".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := cliConfig{}
		if err := env.Parse(&cfg); err != nil {
			return fmt.Errorf("loading environment configuration: %w", err)
		}

		if flagAPIURL != "" {
			cfg.APIURL = flagAPIURL
		}
		if flagToken != "" {
			cfg.Token = flagToken
		}

		c, err := client.New(client.Config{
			BaseURL: cfg.APIURL,
			Token:   cfg.Token,
		})
		if err != nil {
			return err
		}

		apiClient = c
		return nil
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "API base URL (overrides NOTIFY_ADMIN_API_URL)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "Bearer token (overrides NOTIFY_ADMIN_TOKEN)")
}
