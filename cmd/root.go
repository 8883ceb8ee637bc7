package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/disk-bundler/internal/app"
	"github.com/oshokin/disk-bundler/internal/config"
	"github.com/oshokin/disk-bundler/internal/logger"
	"github.com/oshokin/disk-bundler/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "disk-bundler [flags]",
		Short: "Browse public Yandex.Disk folders and download their files as ZIP bundles.",
		Long: `Disk Bundler is a web service for browsing public Yandex.Disk folders.
It serves:
- A listing page with a media type filter
- Single file downloads via redirect to a provider-issued link
- Selected files bundled into a ZIP archive
- Local files from the media root bundled into a ZIP archive

Folder listings are cached for a configurable period.`,
		Args:             cobra.NoArgs,
		Version:          version.Full(),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			app.ExecuteRootCommand(cmd.Context(), appConfig)
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmdFlags := rootCmd.Flags()

	rootCmdFlags.StringP(
		"listen",
		"a",
		"",
		fmt.Sprintf("address the web server binds to (default is '%s').",
			config.DefaultListenAddress))

	rootCmdFlags.StringP(
		"media-root",
		"m",
		"",
		"directory local archive requests are resolved against.")

	rootCmdFlags.StringP(
		"log-level",
		"l",
		"",
		fmt.Sprintf("logging verbosity level (default is '%s').",
			config.DefaultLogLevel))
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("listen"); flag != nil && flag.Changed {
		cfg.ListenAddress, _ = flags.GetString("listen")
	}

	if flag := flags.Lookup("media-root"); flag != nil && flag.Changed {
		cfg.MediaRoot, _ = flags.GetString("media-root")
	}

	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	logger.SetLevel(cfg.ParsedLogLevel)

	return nil
}
