package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/fire-drill/internal/config"
	"github.com/oshokin/fire-drill/internal/service/client"
	"github.com/oshokin/fire-drill/internal/service/watcher"
	"github.com/oshokin/fire-drill/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// serverAddress overrides server_addr from the configuration.
	serverAddress string
	// asJSON prints snapshots as JSON.
	asJSON bool
	// wait retries start while the server is unreachable.
	wait bool
	// pollInterval is the watch polling period.
	pollInterval time.Duration
	// follow keeps watching after a run finishes.
	follow bool

	// rootCmd represents the base command for controlling a drill server.
	rootCmd = &cobra.Command{
		Use:   "drill-ctl",
		Short: "Control a fire drill running on drill-server.",
		Long: `Client of drill-server.

Starts runs on behalf of the current user, presses the drill controls,
restarts runs and reports or watches the drill state.`,
	}

	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Print the drill state.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAction(cmd, client.ActionStatus, "")
		},
	}

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start a new run.",
		Long: `Start a new run recorded under the current user and hostname.

The server refuses while a run is in progress; use restart to abandon it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAction(cmd, client.ActionStart, "")
		},
	}

	pressCmd = &cobra.Command{
		Use:       "press <alarm|suppress|reset>",
		Short:     "Press the control of an objective.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"alarm", "suppress", "reset"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, client.ActionPress, args[0])
		},
	}

	restartCmd = &cobra.Command{
		Use:   "restart",
		Short: "Abandon the current run and start a new one.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAction(cmd, client.ActionRestart, "")
		},
	}

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Log the drill state until the run finishes.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &watcher.Options{
				ConfigPath:    configPath,
				ServerAddress: serverAddress,
				PollInterval:  pollInterval,
				Follow:        follow,
			}

			return watcher.Run(ctx, options)
		},
	}
)

// runAction performs one client action with the shared flags.
func runAction(cmd *cobra.Command, action client.Action, objective string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	options := &client.Options{
		ConfigPath:    configPath,
		ServerAddress: serverAddress,
		Action:        action,
		Objective:     objective,
		JSON:          asJSON,
		Wait:          wait,
		Out:           cmd.OutOrStdout(),
	}

	return client.Run(ctx, options)
}

// Execute runs the drill-ctl CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().
		StringVarP(&serverAddress, "server", "s", "", "drill server address (overrides server_addr)")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print the drill state as JSON")

	startCmd.Flags().BoolVarP(&wait, "wait", "w", false, "retry until the server is reachable")

	watchCmd.Flags().DurationVarP(&pollInterval, "interval", "i", watcher.DefaultPollInterval, "polling interval")
	watchCmd.Flags().BoolVarP(&follow, "follow", "f", false, "keep watching after the run finishes")

	rootCmd.AddCommand(statusCmd, startCmd, pressCmd, restartCmd, watchCmd)
}
