// Package cli holds the newsroom command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/globalpulse24/newsroom/pkg/logger"
)

var envFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "newsroom",
	Short: "GlobalPulse24 news submission and moderation API",
	Long: `newsroom accepts article submissions from publishers, lets admins
moderate them, and reports mock publisher earnings.

	newsroom serve
	newsroom provision-admin --username admin
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadEnvFile(envFile, os.Getenv("ENV"))
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load environment variables from this file")
}

// loadEnvFile reads an explicit --env-file, or ./.env in development.
// Variables already present in the environment win.
func loadEnvFile(path, env string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
		return nil
	}
	if env == "" || env == "development" {
		// A missing .env is normal outside a developer checkout.
		_ = godotenv.Load()
	}
	return nil
}

func initLogger(level, env string) zerolog.Logger {
	return logger.Init(logger.Options{
		Level:   level,
		Pretty:  env == "development",
		Service: "newsroom",
		Env:     env,
	})
}
