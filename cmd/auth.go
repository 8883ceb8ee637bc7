package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/disk-bundler/internal/app"
)

var (
	authCmd = &cobra.Command{
		Use:   "auth",
		Short: "Authentication management commands",
		Long: `Manage authentication for the Yandex.Disk API.

Use 'auth set-token' to store your OAuth token in the configuration file.`,
	}

	authSetTokenCmd = &cobra.Command{
		Use:   "set-token {token}",
		Short: "Store the Yandex.Disk OAuth token",
		Long: `Stores the given OAuth token in the configuration file.

Obtain a token at https://oauth.yandex.ru for an application with
disk access, then run:

disk-bundler auth set-token y0_AgAAAA...

The server sends the token as 'Authorization: OAuth <token>' on every
API request.`,
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteAuthSetTokenCommand(cmd.Context(), appConfig, args[0])
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	// Add set-token subcommand to auth command.
	authCmd.AddCommand(authSetTokenCmd)

	// Add auth command to root command.
	rootCmd.AddCommand(authCmd)
}
