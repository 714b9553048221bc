package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/fire-drill/internal/config"
	"github.com/oshokin/fire-drill/internal/service/server"
	"github.com/oshokin/fire-drill/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// feedAddress overrides the event feed listen address.
	feedAddress string

	// rootCmd represents the base command for running the drill server.
	rootCmd = &cobra.Command{
		Use:   "drill-server [listen-address]",
		Short: "Run a headless fire drill over gRPC with a live event feed.",
		Long: `Starts a fire drill without a screen and exposes it over gRPC.

Trainees start runs and press controls with drill-ctl; the drill advances in
real time on the server. Every drill event is broadcast as JSON on the
websocket feed (path /events) for instructors.

Only the port from server_addr and feed_addr settings is used for listening
(e.g., :50051). Listen address can be provided as argument to override config
(e.g., :9090, 0.0.0.0:50051).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				FeedAddress:   feedAddress,
			}

			return server.Run(ctx, options)
		},
	}
)

// Execute runs the drill-server CLI and exits with non-zero status on error.
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
	rootCmd.Flags().StringVarP(&feedAddress, "feed", "f", "", "event feed listen address (overrides feed_addr)")
}
