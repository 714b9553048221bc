package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/fire-drill/internal/config"
	"github.com/oshokin/fire-drill/internal/service/console"
	"github.com/oshokin/fire-drill/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// mute disables audio output.
	mute bool
	// replace terminates a console that is already running.
	replace bool

	// rootCmd represents the base command for the interactive drill.
	rootCmd = &cobra.Command{
		Use:   "drill-console",
		Short: "Run the fire drill in the terminal.",
		Long: `Interactive fire drill in the terminal.

A fire breaks out in the server room. Walk up to the panels and follow the
protocol before the countdown runs out: raise the alarm, release the
suppression agent, then reset the system.

Only one console may run on a machine at a time since it owns the audio
device; use --replace to take over from a running one.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
			defer stop()

			options := &console.Options{
				ConfigPath: configPath,
				Mute:       mute,
				Replace:    replace,
			}

			return console.Run(ctx, options)
		},
	}
)

// Execute runs the drill-console CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().BoolVarP(&mute, "mute", "m", false, "disable sound")
	rootCmd.Flags().BoolVar(&replace, "replace", false, "terminate a running console first")
}
