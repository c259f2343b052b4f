package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/globalpulse24/newsroom/internal/app"
	"github.com/globalpulse24/newsroom/internal/pkg/config"
)

const adminPasswordEnv = "NEWSROOM_ADMIN_PASSWORD"

var provisionFlags struct {
	username string
	password string
}

// provisionCmd creates the admin account out of band. The API itself never
// seeds users.
var provisionCmd = &cobra.Command{
	Use:   "provision-admin",
	Short: "Create the admin account if it does not exist",
	Long: `Create the admin account if it does not exist. The password is read from
--password or, preferably, from the NEWSROOM_ADMIN_PASSWORD environment variable.

	NEWSROOM_ADMIN_PASSWORD=... newsroom provision-admin --username admin
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		password := resolvePassword(provisionFlags.password, os.Getenv(adminPasswordEnv))
		if provisionFlags.username == "" || password == "" {
			return errors.New("provision-admin: --username and a password are required")
		}

		cfg, err := config.LoadProvision(cmd.Context())
		if err != nil {
			return err
		}
		log := initLogger(cfg.LogLevel, cfg.Env)

		created, err := app.ProvisionAdmin(cmd.Context(), cfg, log, provisionFlags.username, password)
		if err != nil {
			log.Error().Err(err).Msg("provision admin failed")
			return err
		}
		if created {
			cmd.Printf("admin %q created\n", provisionFlags.username)
		} else {
			cmd.Printf("admin %q already exists, nothing to do\n", provisionFlags.username)
		}
		return nil
	},
}

// resolvePassword prefers the flag and falls back to the environment.
func resolvePassword(flag, env string) string {
	if flag != "" {
		return flag
	}
	return env
}

func init() {
	rootCmd.AddCommand(provisionCmd)

	provisionCmd.Flags().StringVar(&provisionFlags.username, "username", "", "admin username")
	provisionCmd.Flags().StringVar(&provisionFlags.password, "password", "", "admin password (defaults to $"+adminPasswordEnv+")")
}
