package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/globalpulse24/newsroom/internal/app"
	"github.com/globalpulse24/newsroom/internal/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the newsroom HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg, err := config.Load(ctx)
		if err != nil {
			return err
		}
		log := initLogger(cfg.LogLevel, cfg.Env)

		a, err := app.New(ctx, cfg, log)
		if err != nil {
			log.Error().Err(err).Msg("failed to start")
			return err
		}
		defer a.Close(context.Background())

		if err := a.Run(ctx); err != nil {
			log.Error().Err(err).Msg("server error")
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
